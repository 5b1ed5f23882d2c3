package vanco

import (
	"encoding/xml"
	"fmt"
	"strings"
)

// Element is one node of a request document: either a leaf carrying text
// or a container holding an ordered list of children. The gateway treats
// some request fields as order-sensitive, so declaration order is
// preserved all the way to the wire.
type Element struct {
	Tag      string
	Text     string
	Children []Element
}

// leaf builds a text element.
func leaf(tag, text string) Element {
	return Element{Tag: tag, Text: text}
}

// node builds a container element.
func node(tag string, children ...Element) Element {
	return Element{Tag: tag, Children: children}
}

// renderDocument serializes the element tree into a single well-formed
// XML document with declaration. Tag names are not validated; composing
// them is the caller's responsibility.
func renderDocument(root Element) (string, error) {
	var buf strings.Builder
	buf.WriteString(xml.Header)

	enc := xml.NewEncoder(&buf)
	if err := encodeElement(enc, root); err != nil {
		return "", fmt.Errorf("render document: %w", err)
	}
	if err := enc.Flush(); err != nil {
		return "", fmt.Errorf("render document: %w", err)
	}

	return buf.String(), nil
}

func encodeElement(enc *xml.Encoder, el Element) error {
	start := xml.StartElement{Name: xml.Name{Local: el.Tag}}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}

	if len(el.Children) > 0 {
		for _, child := range el.Children {
			if err := encodeElement(enc, child); err != nil {
				return err
			}
		}
	} else if el.Text != "" {
		if err := enc.EncodeToken(xml.CharData(el.Text)); err != nil {
			return err
		}
	}

	return enc.EncodeToken(start.End())
}
