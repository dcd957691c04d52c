package pfsense

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"decanter/internal/core/migrate"
	"decanter/internal/core/subnet"
)

// Decode parses a pfSense-style config document. Section names are
// matched case-insensitively; everything outside <interfaces> and
// <dhcpd> is skipped. The core never sees the document shape, only the
// record lists produced by Subnets and Mappings.
func Decode(data []byte) (*Document, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))

	root, err := nextElement(dec)
	if err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	doc := &Document{}
	if err := walkChildren(dec, root, func(el xml.StartElement) error {
		switch lower(el.Name) {
		case "interfaces":
			return decodeInterfaces(dec, el, doc)
		case "dhcpd":
			return decodeDhcpd(dec, el, doc)
		default:
			return dec.Skip()
		}
	}); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	return doc, nil
}

// Subnets extracts the ordered subnet records. Interfaces without both
// an address and a mask are not addressing ranges and are dropped here;
// syntactic validity of what remains is the matcher's job.
func Subnets(doc *Document) []subnet.SubnetRecord {
	var out []subnet.SubnetRecord
	for _, ifc := range doc.Interfaces {
		if ifc.Ipaddr == "" || ifc.Subnet == "" {
			continue
		}
		out = append(out, subnet.SubnetRecord{
			Id:      ifc.Name,
			Network: ifc.Ipaddr,
			Mask:    ifc.Subnet,
		})
	}
	return out
}

// Mappings flattens all static mappings in document order.
func Mappings(doc *Document) []migrate.MappingRecord {
	var out []migrate.MappingRecord
	for _, d := range doc.Dhcpd {
		for _, sm := range d.StaticMaps {
			out = append(out, migrate.MappingRecord{
				Mac:      sm.Mac,
				Ipaddr:   sm.Ipaddr,
				Hostname: sm.Hostname,
				Descr:    sm.Descr,
				Cid:      sm.Cid,
			})
		}
	}
	return out
}

func decodeInterfaces(dec *xml.Decoder, parent xml.StartElement, doc *Document) error {
	return walkChildren(dec, parent, func(el xml.StartElement) error {
		entry := InterfaceEntry{Name: el.Name.Local}
		if err := walkChildren(dec, el, func(field xml.StartElement) error {
			switch lower(field.Name) {
			case "ipaddr":
				v, err := elementText(dec, field)
				entry.Ipaddr = v
				return err
			case "subnet":
				v, err := elementText(dec, field)
				entry.Subnet = v
				return err
			default:
				return dec.Skip()
			}
		}); err != nil {
			return err
		}
		doc.Interfaces = append(doc.Interfaces, entry)
		return nil
	})
}

func decodeDhcpd(dec *xml.Decoder, parent xml.StartElement, doc *Document) error {
	return walkChildren(dec, parent, func(el xml.StartElement) error {
		entry := DhcpdEntry{Name: el.Name.Local}
		if err := walkChildren(dec, el, func(field xml.StartElement) error {
			if lower(field.Name) != "staticmap" {
				return dec.Skip()
			}
			sm, err := decodeStaticMap(dec, field)
			if err != nil {
				return err
			}
			entry.StaticMaps = append(entry.StaticMaps, sm)
			return nil
		}); err != nil {
			return err
		}
		doc.Dhcpd = append(doc.Dhcpd, entry)
		return nil
	})
}

func decodeStaticMap(dec *xml.Decoder, parent xml.StartElement) (StaticMap, error) {
	var sm StaticMap
	err := walkChildren(dec, parent, func(field xml.StartElement) error {
		var dst *string
		switch lower(field.Name) {
		case "mac":
			dst = &sm.Mac
		case "ipaddr":
			dst = &sm.Ipaddr
		case "hostname":
			dst = &sm.Hostname
		case "descr":
			dst = &sm.Descr
		case "cid":
			dst = &sm.Cid
		default:
			return dec.Skip()
		}
		v, err := elementText(dec, field)
		*dst = v
		return err
	})
	return sm, err
}

// walkChildren invokes fn for each direct child element of parent. fn
// must consume the child (via dec.Skip, elementText or a nested walk)
// before returning.
func walkChildren(dec *xml.Decoder, parent xml.StartElement, fn func(el xml.StartElement) error) error {
	for {
		tok, err := dec.Token()
		if err != nil {
			if err == io.EOF {
				return fmt.Errorf("unexpected EOF inside <%s>", parent.Name.Local)
			}
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if err := fn(t); err != nil {
				return err
			}
		case xml.EndElement:
			return nil
		}
	}
}

// elementText consumes el and returns its trimmed character data.
func elementText(dec *xml.Decoder, el xml.StartElement) (string, error) {
	var buf strings.Builder
	for {
		tok, err := dec.Token()
		if err != nil {
			return "", err
		}
		switch t := tok.(type) {
		case xml.CharData:
			buf.Write(t)
		case xml.StartElement:
			if err := dec.Skip(); err != nil {
				return "", err
			}
		case xml.EndElement:
			return strings.TrimSpace(buf.String()), nil
		}
	}
}

func nextElement(dec *xml.Decoder) (xml.StartElement, error) {
	for {
		tok, err := dec.Token()
		if err != nil {
			return xml.StartElement{}, err
		}
		if el, ok := tok.(xml.StartElement); ok {
			return el, nil
		}
	}
}

func lower(n xml.Name) string {
	return strings.ToLower(n.Local)
}
