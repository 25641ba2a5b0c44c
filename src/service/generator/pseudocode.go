package generator

import (
	"fmt"

	"prism/src/model"
	"prism/src/util"
)

// Pseudocode renders data structures and operations in the requested style
func Pseudocode(e model.Entities, style model.PseudocodeStyle) (string, error) {
	var w writer
	switch style {
	case model.StyleGeneric, "":
		genericPseudocode(&w, e)
	case model.StyleClassBased:
		classPseudocode(&w, e)
	default:
		return "", &model.ConfigurationError{
			Field:   "pseudocode_style",
			Message: fmt.Sprintf("unsupported pseudocode style %q (supported: generic, class)", style),
		}
	}
	return w.String(), nil
}

func genericPseudocode(w *writer, e model.Entities) {
	w.line("// Data structures")
	for _, o := range e.Objects {
		w.line("STRUCTURE %s", className(o))
		for _, f := range fieldsFor(o) {
			w.line("    %s: %s", f.name, f.kind)
		}
		w.line("END STRUCTURE")
		w.blank()
	}
	if len(e.Objects) == 0 {
		w.line("// no domain objects identified")
		w.blank()
	}

	w.line("// Operations")
	target := targetParam(e)
	for _, action := range actionsOrFallback(e) {
		w.line("FUNCTION %s(actor, %s)", methodName(action), target)
		operationBody(w, "    ", action, target)
		w.line("END FUNCTION")
		w.blank()
	}
}

func classPseudocode(w *writer, e model.Entities) {
	for _, o := range e.Objects {
		w.line("CLASS %s", className(o))
		for _, f := range fieldsFor(o) {
			w.line("    PRIVATE %s: %s", f.name, f.kind)
		}
		w.blank()
		w.line("    CONSTRUCTOR(id)")
		w.line("        this.id <- id")
		w.line("    END CONSTRUCTOR")
		w.line("END CLASS")
		w.blank()
	}

	target := targetParam(e)
	for _, g := range groupActions(actionsOrFallback(e)) {
		w.line("CLASS %s", ServiceName(g.group))
		w.line("    PRIVATE repository: Repository")
		w.line("    PRIVATE auditLog: AuditLog")
		w.blank()
		for _, action := range g.actions {
			w.line("    METHOD %s(actor, %s) RETURNS Result", methodName(action), target)
			operationBody(w, "        ", action, target)
			w.line("    END METHOD")
			w.blank()
		}
		w.line("END CLASS")
		w.blank()
	}
}

// operationBody writes the validate, authorize, execute, log skeleton
func operationBody(w *writer, indent, action, target string) {
	w.line("%s// validate preconditions", indent)
	w.line("%sIF %s IS EMPTY THEN", indent, target)
	w.line("%s    RETURN Error(\"%s is required\")", indent, target)
	w.line("%sEND IF", indent)
	w.line("%s// check permissions", indent)
	w.line("%sIF NOT actor.canPerform(\"%s\") THEN", indent, quote(action))
	w.line("%s    RETURN Error(\"permission denied\")", indent)
	w.line("%sEND IF", indent)
	w.line("%s// execute", indent)
	w.line("%sresult <- execute%s(%s)", indent, util.PascalCase(action), target)
	w.line("%s// log", indent)
	w.line("%sLOG \"%s\" BY actor WITH result", indent, quote(action))
	w.line("%sRETURN result", indent)
}

func targetParam(e model.Entities) string {
	if len(e.Objects) == 0 {
		return "request"
	}
	return util.CamelCase(e.Objects[0])
}
