package netiron

import (
	"fmt"
	"strings"

	"github.com/netxops/gotextfsm"

	"github.com/netadapt/netiron/pkg/util"
)

// All templates are compiled once at package init. A template that
// fails to compile is a configuration defect in this package, not a
// runtime condition, so it panics immediately.
func init() {
	for name, body := range templates {
		fsm := gotextfsm.TextFSM{}
		if err := fsm.ParseString(body); err != nil {
			panic(fmt.Sprintf("netiron: template %q is malformed: %v", name, err))
		}
	}
}

// extract runs the named template over raw command output and returns
// one flat record per emitted row. Every declared field is present in
// every record, as an empty string when the line carrying it never
// matched: output drift across firmware versions yields fewer fields,
// never an error.
func extract(template, raw string) []map[string]string {
	body, ok := templates[template]
	if !ok {
		panic(fmt.Sprintf("netiron: unknown template %q", template))
	}

	// Compiled per call: the FSM carries parse state (Filldown values,
	// current state) that must not leak between outputs.
	fsm := gotextfsm.TextFSM{}
	if err := fsm.ParseString(body); err != nil {
		panic(fmt.Sprintf("netiron: template %q is malformed: %v", template, err))
	}

	parser := gotextfsm.ParserOutput{}
	if err := parser.ParseTextString(raw, fsm, true); err != nil {
		util.Warnf("extract %s: %v", template, err)
		return nil
	}

	records := make([]map[string]string, 0, len(parser.Dict))
	for _, row := range parser.Dict {
		rec := make(map[string]string, len(row))
		for field, val := range row {
			switch v := val.(type) {
			case string:
				rec[field] = v
			case []string:
				rec[field] = strings.Join(v, " ")
			default:
				rec[field] = fmt.Sprintf("%v", v)
			}
		}
		records = append(records, rec)
	}
	return records
}
