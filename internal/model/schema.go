package model

// modelSchema is the JSON Schema every workload model must satisfy
// before semantic validation runs. YAML input is converted to generic
// values first, so one schema covers both file formats.
const modelSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["states"],
  "properties": {
    "name": { "type": "string" },
    "states": {
      "type": "array",
      "minItems": 1,
      "items": { "$ref": "#/$defs/state" }
    }
  },
  "additionalProperties": false,
  "$defs": {
    "state": {
      "type": "object",
      "required": ["id", "request"],
      "properties": {
        "id": { "type": "string", "minLength": 1 },
        "request": { "$ref": "#/$defs/request" },
        "transitions": {
          "type": "array",
          "items": { "$ref": "#/$defs/transition" }
        }
      },
      "additionalProperties": false
    },
    "request": {
      "type": "object",
      "required": ["id", "kind"],
      "properties": {
        "id": { "type": "string", "minLength": 1 },
        "kind": { "enum": ["http", "java", "soap", "script"] },
        "properties": {
          "type": "array",
          "items": { "$ref": "#/$defs/pair" }
        },
        "parameters": {
          "type": "array",
          "items": { "$ref": "#/$defs/namedPair" }
        },
        "assertions": {
          "type": "array",
          "items": { "type": "string" }
        }
      },
      "additionalProperties": false
    },
    "transition": {
      "type": "object",
      "required": ["target"],
      "properties": {
        "target": { "type": "string", "minLength": 1 },
        "thinkTime": {
          "type": "object",
          "required": ["mean", "deviation"],
          "properties": {
            "mean": { "type": "number", "minimum": 0 },
            "deviation": { "type": "number", "minimum": 0 }
          },
          "additionalProperties": false
        }
      },
      "additionalProperties": false
    },
    "pair": {
      "type": "object",
      "required": ["key", "value"],
      "properties": {
        "key": { "type": "string", "minLength": 1 },
        "value": { "type": "string" }
      },
      "additionalProperties": false
    },
    "namedPair": {
      "type": "object",
      "required": ["name", "value"],
      "properties": {
        "name": { "type": "string", "minLength": 1 },
        "value": { "type": "string" }
      },
      "additionalProperties": false
    }
  }
}`
