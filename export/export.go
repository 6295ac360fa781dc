// Package export writes a library listing as json, csv or xml.
package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"encoding/xml"
	"io"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/natefinch/atomic"
	"github.com/pkg/errors"

	nt "upnext/entity"
)

// Format is an export file format.
type Format string

const (
	JSON Format = "json"
	CSV  Format = "csv"
	XML  Format = "xml"
)

// DefaultFields are the csv columns written when none are requested.
var DefaultFields = []string{
	"title", "type", "status", "rating", "authors", "universe",
	"series", "seriesNumber", "progress", "description", "notes",
	"review", "coverUrl", "isHidden",
}

// AllFields are the xml elements written for each item when none are requested.
var AllFields = []string{
	"type", "status", "rating", "title", "alternateTitles", "universe",
	"series", "seriesNumber", "authors", "tags", "abbreviations", "isHidden",
	"progress", "description", "notes", "review", "coverUrl",
	"createdAt", "updatedAt",
}

var now = time.Now

// Write exports items to writer in format, restricted to fields when given.
func Write(writer io.Writer, items []nt.Item, format Format, fields []string) (err error) {

	switch format {
	case JSON:
		err = writeJson(writer, items, fields)
	case CSV:
		err = writeCsv(writer, items, fields)
	case XML:
		err = writeXml(writer, items, fields)
	default:
		err = errors.Errorf("unknown export format %q", format)
	}
	return
}

// WriteFile exports items to path, replacing any existing file atomically.
func WriteFile(path string, items []nt.Item, format Format, fields []string) (err error) {

	buf := &bytes.Buffer{}
	err = Write(buf, items, format, fields)
	if err != nil {
		return
	}

	err = atomic.WriteFile(path, buf)
	err = errors.Wrapf(err, "failed to write export to %s", path)
	return
}

// FormatOf picks a format from a file name's extension, json by default.
func FormatOf(path string) Format {

	switch {
	case strings.HasSuffix(strings.ToLower(path), ".csv"):
		return CSV
	case strings.HasSuffix(strings.ToLower(path), ".xml"):
		return XML
	}
	return JSON
}

// unexported

func writeJson(writer io.Writer, items []nt.Item, fields []string) (err error) {

	var out any = items
	if len(fields) > 0 {
		out, err = pick(items, fields)
		if err != nil {
			return
		}
	}

	enc := json.NewEncoder(writer)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)

	err = enc.Encode(out)
	err = errors.Wrapf(err, "failed to encode json export")
	return
}

// pick narrows each item to the named fields, keeping json types.
func pick(items []nt.Item, fields []string) (out []map[string]any, err error) {

	out = []map[string]any{}
	for _, item := range items {
		var data []byte
		data, err = json.Marshal(item)
		if err != nil {
			err = errors.Wrapf(err, "failed to marshal item %s", item.Id)
			return
		}

		full := map[string]any{}
		err = json.Unmarshal(data, &full)
		if err != nil {
			err = errors.Wrapf(err, "failed to unmarshal item %s", item.Id)
			return
		}

		picked := map[string]any{}
		for _, field := range fields {
			if val, ok := full[field]; ok {
				picked[field] = val
			}
		}
		out = append(out, picked)
	}
	return
}

func writeCsv(writer io.Writer, items []nt.Item, fields []string) (err error) {

	if len(fields) == 0 {
		fields = DefaultFields
	}

	cw := csv.NewWriter(writer)

	err = cw.Write(fields)
	if err != nil {
		err = errors.Wrapf(err, "failed to write csv header")
		return
	}

	for _, item := range items {
		row := make([]string, len(fields))
		for idx, field := range fields {
			row[idx] = cell(item, field)
		}

		err = cw.Write(row)
		if err != nil {
			err = errors.Wrapf(err, "failed to write csv row for %s", item.Id)
			return
		}
	}

	cw.Flush()
	err = errors.Wrapf(cw.Error(), "failed to flush csv")
	return
}

func cell(item nt.Item, field string) string {

	if field == "author" {
		field = "authors"
	}
	if values, ok := list(item, field); ok {
		return strings.Join(values, ", ")
	}

	if field == "isHidden" {
		if item.IsHidden {
			return "Yes"
		}
		return "No"
	}
	return item.Field(field)
}

// writeXml writes a library element holding one item element per item.
// List fields nest one child per value, named for the singular.
func writeXml(writer io.Writer, items []nt.Item, fields []string) (err error) {

	if len(fields) == 0 {
		fields = AllFields
	}

	_, err = io.WriteString(writer, xml.Header)
	if err != nil {
		err = errors.Wrapf(err, "failed to write xml header")
		return
	}

	enc := xml.NewEncoder(writer)
	enc.Indent("", "  ")

	root := element("library",
		xml.Attr{Name: xml.Name{Local: "exported"}, Value: now().Format(time.RFC3339)},
		xml.Attr{Name: xml.Name{Local: "count"}, Value: strconv.Itoa(len(items))},
	)
	err = enc.EncodeToken(root)
	if err != nil {
		err = errors.Wrapf(err, "failed to encode xml root")
		return
	}

	for _, item := range items {
		err = encodeItem(enc, item, fields)
		if err != nil {
			err = errors.Wrapf(err, "failed to encode xml for %s", item.Id)
			return
		}
	}

	err = enc.EncodeToken(root.End())
	if err != nil {
		err = errors.Wrapf(err, "failed to encode xml root")
		return
	}

	err = enc.Flush()
	err = errors.Wrapf(err, "failed to flush xml")
	return
}

func encodeItem(enc *xml.Encoder, item nt.Item, fields []string) (err error) {

	start := element("item", xml.Attr{Name: xml.Name{Local: "id"}, Value: item.Id})
	err = enc.EncodeToken(start)
	if err != nil {
		return
	}

	for _, field := range fields {
		if field == "id" || !slices.Contains(AllFields, field) {
			continue
		}

		values, isList := list(item, field)
		if !isList {
			err = enc.EncodeElement(item.Field(field), element(field))
			if err != nil {
				return
			}
			continue
		}

		parent := element(field)
		err = enc.EncodeToken(parent)
		if err != nil {
			return
		}
		for _, value := range values {
			err = enc.EncodeElement(value, element(singular(field)))
			if err != nil {
				return
			}
		}
		err = enc.EncodeToken(parent.End())
		if err != nil {
			return
		}
	}

	err = enc.EncodeToken(start.End())
	return
}

func element(name string, attrs ...xml.Attr) xml.StartElement {
	return xml.StartElement{Name: xml.Name{Local: name}, Attr: attrs}
}

func list(item nt.Item, field string) ([]string, bool) {

	switch field {
	case "alternateTitles":
		return item.AlternateTitles, true
	case "authors":
		return item.Authors, true
	case "tags":
		return item.Tags, true
	case "abbreviations":
		return item.Abbreviations, true
	}
	return nil, false
}

func singular(field string) string {

	if strings.HasSuffix(field, "s") {
		return strings.TrimSuffix(field, "s")
	}
	return field + "_item"
}
