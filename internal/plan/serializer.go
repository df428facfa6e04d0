package plan

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Format selects the serialized document representation.
type Format string

const (
	// FormatXML is the engine's native document format.
	FormatXML Format = "xml"
	// FormatJSON is the inspection-friendly representation used by
	// the inspect command.
	FormatJSON Format = "json"
)

// FormatForPath picks a serialization format from an output file
// extension, defaulting to XML.
func FormatForPath(path string) Format {
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		return FormatJSON
	}
	return FormatXML
}

// ParseFormat parses an explicit format selection.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "xml":
		return FormatXML, nil
	case "json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("unknown plan format: %s", s)
}

// Write serializes the tree in the given format.
func (t *Tree) Write(w io.Writer, format Format) error {
	switch format {
	case FormatJSON:
		return t.WriteJSON(w)
	default:
		return t.WriteXML(w)
	}
}

type xmlProperty struct {
	Name  string `xml:"name,attr"`
	Value string `xml:",chardata"`
}

type xmlArgument struct {
	Name  string `xml:"name,attr"`
	Value string `xml:",chardata"`
}

type xmlNode struct {
	XMLName    xml.Name      `xml:"node"`
	Kind       NodeKind      `xml:"kind,attr"`
	Name       string        `xml:"name,attr"`
	Properties []xmlProperty `xml:"prop,omitempty"`
	Arguments  []xmlArgument `xml:"arg,omitempty"`
	Children   []xmlNode     `xml:"node,omitempty"`
}

type xmlDocument struct {
	XMLName xml.Name `xml:"testPlan"`
	ID      string   `xml:"id,attr"`
	Version string   `xml:"version,attr"`
	Root    xmlNode  `xml:"node"`
}

func toXMLNode(n *Node) xmlNode {
	out := xmlNode{Kind: n.Kind, Name: n.Name}
	for _, p := range n.Properties {
		out.Properties = append(out.Properties, xmlProperty{Name: p.Name, Value: p.Value})
	}
	for _, a := range n.Arguments {
		out.Arguments = append(out.Arguments, xmlArgument{Name: a.Name, Value: a.Value})
	}
	for _, c := range n.Children {
		out.Children = append(out.Children, toXMLNode(c))
	}
	return out
}

// WriteXML writes the engine document format.
func (t *Tree) WriteXML(w io.Writer) error {
	if t.Root == nil {
		return fmt.Errorf("cannot serialize empty tree")
	}

	doc := xmlDocument{ID: t.PlanID, Version: "1.0", Root: toXMLNode(t.Root)}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("failed to write plan document: %w", err)
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to write plan document: %w", err)
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("failed to write plan document: %w", err)
	}
	return nil
}

type jsonNode struct {
	Kind       NodeKind   `json:"kind"`
	Name       string     `json:"name"`
	Properties []Property `json:"properties,omitempty"`
	Arguments  []Argument `json:"arguments,omitempty"`
	Children   []jsonNode `json:"children,omitempty"`
}

type jsonDocument struct {
	ID      string   `json:"id"`
	Version string   `json:"version"`
	Plan    jsonNode `json:"plan"`
}

func toJSONNode(n *Node) jsonNode {
	out := jsonNode{Kind: n.Kind, Name: n.Name, Properties: n.Properties, Arguments: n.Arguments}
	for _, c := range n.Children {
		out.Children = append(out.Children, toJSONNode(c))
	}
	return out
}

// WriteJSON writes the inspection representation.
func (t *Tree) WriteJSON(w io.Writer) error {
	if t.Root == nil {
		return fmt.Errorf("cannot serialize empty tree")
	}

	doc := jsonDocument{ID: t.PlanID, Version: "1.0", Plan: toJSONNode(t.Root)}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to write plan document: %w", err)
	}
	return nil
}
