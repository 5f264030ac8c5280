package adapters

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"

	toon "github.com/tooncore/toon-go"
)

// LoadXML converts an XML document into a TOON-ready tree value: the root
// element becomes a single-field object keyed by its tag name. Attributes
// become "@name" fields, repeated child tags collapse into an array keyed
// by the tag name, and any non-whitespace character data becomes a "_text"
// field when the element also carries attributes or children.
func LoadXML(data []byte) (any, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("adapters: xml: %w", err)
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		value, err := xmlElementToValue(dec, start)
		if err != nil {
			return nil, fmt.Errorf("adapters: xml: %w", err)
		}
		return toon.NewObject(toon.Field{Key: start.Name.Local, Value: value}), nil
	}
}

type xmlChildGroup struct {
	name  string
	items []any
}

func xmlElementToValue(dec *xml.Decoder, start xml.StartElement) (any, error) {
	fields := make([]toon.Field, 0, len(start.Attr))
	for _, attr := range start.Attr {
		fields = append(fields, toon.Field{Key: "@" + attr.Name.Local, Value: attr.Value})
	}

	var groups []*xmlChildGroup
	groupByName := make(map[string]*xmlChildGroup)
	var textParts []string

	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			child, err := xmlElementToValue(dec, t)
			if err != nil {
				return nil, err
			}
			group, ok := groupByName[t.Name.Local]
			if !ok {
				group = &xmlChildGroup{name: t.Name.Local}
				groupByName[t.Name.Local] = group
				groups = append(groups, group)
			}
			group.items = append(group.items, child)
		case xml.CharData:
			if trimmed := strings.TrimSpace(string(t)); trimmed != "" {
				textParts = append(textParts, trimmed)
			}
		case xml.EndElement:
			combinedText := strings.Join(textParts, " ")
			if len(groups) == 0 && len(fields) == 0 {
				if combinedText == "" {
					return nil, nil
				}
				return combinedText, nil
			}
			if combinedText != "" {
				fields = append(fields, toon.Field{Key: "_text", Value: combinedText})
			}
			for _, group := range groups {
				if len(group.items) == 1 {
					fields = append(fields, toon.Field{Key: group.name, Value: group.items[0]})
				} else {
					fields = append(fields, toon.Field{Key: group.name, Value: group.items})
				}
			}
			return toon.NewObject(fields...), nil
		}
	}
}
