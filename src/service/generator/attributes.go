package generator

import (
	"strings"

	"prism/src/util"
)

type field struct {
	name string
	kind string
}

// headAttributes lists typical attributes per head noun
var headAttributes = map[string][]field{
	"account":      {{"username", "Text"}, {"email", "Text"}, {"status", "Status"}},
	"profile":      {{"displayName", "Text"}, {"email", "Text"}, {"avatarUrl", "Text"}},
	"password":     {{"hash", "Text"}, {"updatedAt", "Timestamp"}},
	"report":       {{"title", "Text"}, {"period", "DateRange"}, {"generatedAt", "Timestamp"}},
	"invoice":      {{"number", "Text"}, {"amount", "Money"}, {"dueDate", "Date"}},
	"statement":    {{"period", "DateRange"}, {"balance", "Money"}},
	"order":        {{"number", "Text"}, {"total", "Money"}, {"status", "Status"}},
	"payment":      {{"amount", "Money"}, {"currency", "Text"}, {"status", "Status"}},
	"transaction":  {{"amount", "Money"}, {"type", "Text"}, {"occurredAt", "Timestamp"}},
	"product":      {{"name", "Text"}, {"price", "Money"}, {"sku", "Text"}},
	"item":         {{"name", "Text"}, {"quantity", "Integer"}},
	"user":         {{"name", "Text"}, {"email", "Text"}, {"role", "Text"}},
	"file":         {{"name", "Text"}, {"size", "Integer"}, {"contentType", "Text"}},
	"document":     {{"title", "Text"}, {"size", "Integer"}, {"contentType", "Text"}},
	"photo":        {{"url", "Text"}, {"width", "Integer"}, {"height", "Integer"}},
	"image":        {{"url", "Text"}, {"width", "Integer"}, {"height", "Integer"}},
	"message":      {{"recipient", "Text"}, {"body", "Text"}, {"sentAt", "Timestamp"}},
	"notification": {{"recipient", "Text"}, {"channel", "Text"}, {"sentAt", "Timestamp"}},
	"email":        {{"recipient", "Text"}, {"subject", "Text"}, {"body", "Text"}},
	"dashboard":    {{"widgets", "List<Widget>"}, {"layout", "Text"}},
	"data":         {{"format", "Text"}, {"records", "Integer"}},
	"appointment":  {{"startsAt", "Timestamp"}, {"duration", "Duration"}, {"status", "Status"}},
	"booking":      {{"startsAt", "Timestamp"}, {"status", "Status"}},
	"ticket":       {{"subject", "Text"}, {"priority", "Text"}, {"status", "Status"}},
	"comment":      {{"author", "Text"}, {"body", "Text"}, {"postedAt", "Timestamp"}},
	"task":         {{"title", "Text"}, {"dueDate", "Date"}, {"status", "Status"}},
	"cart":         {{"items", "List<Item>"}, {"total", "Money"}},
}

var defaultAttributes = []field{{"name", "Text"}, {"createdAt", "Timestamp"}}

// fieldsFor returns id, one field per modifier of the object phrase, then the
// head noun's attributes
func fieldsFor(object string) []field {
	words := strings.Fields(strings.ToLower(object))
	fields := []field{{"id", "Identifier"}}
	if len(words) == 0 {
		return append(fields, defaultAttributes...)
	}

	seen := map[string]bool{"id": true}
	for _, modifier := range words[:len(words)-1] {
		name := util.CamelCase(modifier)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		fields = append(fields, field{name: name, kind: "Text"})
	}

	attrs, ok := headAttributes[words[len(words)-1]]
	if !ok {
		attrs = defaultAttributes
	}
	for _, f := range attrs {
		if seen[f.name] {
			continue
		}
		seen[f.name] = true
		fields = append(fields, f)
	}
	return fields
}

func className(s string) string {
	if name := util.PascalCase(s); name != "" {
		return name
	}
	return "Entity"
}
