package generator

import (
	"fmt"

	"prism/src/model"
	"prism/src/util"
)

// UML renders a use-case, a sequence and a class diagram as PlantUML
func UML(e model.Entities) string {
	var w writer
	useCaseDiagram(&w, e)
	w.blank()
	sequenceDiagram(&w, e)
	w.blank()
	classDiagram(&w, e)
	return w.String()
}

func useCaseDiagram(w *writer, e model.Entities) {
	actors := actorsOrFallback(e)
	actions := actionsOrFallback(e)

	w.line("@startuml")
	w.line("title Use Case Diagram")
	w.line("left to right direction")
	w.blank()
	for _, a := range actors {
		w.line(`actor "%s" as %s`, quote(a), util.Identifier(a))
	}
	w.blank()
	w.line(`rectangle "System" {`)
	for i, action := range actions {
		w.line(`  usecase "%s" as UC%d`, quote(action), i+1)
	}
	w.line("}")
	w.blank()
	for _, actor := range actors {
		for i, action := range actions {
			if shouldConnect(actor, action) {
				w.line("%s --> UC%d", util.Identifier(actor), i+1)
			}
		}
	}

	// authentication is included by every state-changing use case
	for i, action := range actions {
		if !isAuthentication(action) {
			continue
		}
		for j, other := range actions {
			if GroupOf(other) == GroupManagement || GroupOf(other) == GroupWorkflow {
				w.line("UC%d ..> UC%d : <<include>>", j+1, i+1)
			}
		}
	}

	if len(e.Objects) > 0 {
		w.blank()
		w.line("note right of UC1")
		w.line("  Handles:")
		for _, o := range e.Objects {
			w.line("  - %s", o)
		}
		w.line("end note")
	}
	w.line("@enduml")
}

func sequenceDiagram(w *writer, e model.Entities) {
	actor := util.Identifier(actorsOrFallback(e)[0])
	actions := actionsOrFallback(e)

	w.line("@startuml")
	w.line("title Sequence Diagram")
	w.blank()
	w.line(`actor "%s" as %s`, quote(actorsOrFallback(e)[0]), actor)
	w.line(`participant "System" as System`)
	w.line(`database "Database" as DB`)
	w.blank()

	authenticated := false
	for _, a := range actions {
		if isAuthentication(a) {
			authenticated = true
			break
		}
	}
	if authenticated {
		w.line("== Authentication ==")
		w.line("%s -> System : login(credentials)", actor)
		w.line("activate System")
		w.line("System -> DB : validate credentials")
		w.line("DB --> System : validation result")
		w.line("alt credentials valid")
		w.line("  System --> %s : session token", actor)
		w.line("else invalid credentials")
		w.line("  System --> %s : authentication error", actor)
		w.line("end")
		w.line("deactivate System")
		w.blank()
	}

	w.line("== Main Flow ==")
	for _, action := range actions {
		if isAuthentication(action) {
			continue
		}
		label := quote(action)
		w.line("%s -> System : %s", actor, label)
		w.line("activate System")
		switch firstWord(action) {
		case "create", "add", "register", "save", "store":
			w.line("System -> System : validate input")
			w.line("System -> DB : store data")
			w.line("DB --> System : confirmation")
		case "update", "edit", "modify", "change", "reset":
			w.line("System -> DB : retrieve current data")
			w.line("DB --> System : current data")
			w.line("System -> System : apply changes")
			w.line("System -> DB : update data")
			w.line("DB --> System : update confirmation")
		case "delete", "remove", "archive":
			w.line("System -> System : check permissions")
			w.line("System -> DB : delete data")
			w.line("DB --> System : deletion confirmation")
		default:
			w.line("System -> System : process request")
			if len(e.Objects) > 0 {
				w.line("System -> DB : %s", quote(e.Objects[0]))
				w.line("DB --> System : result")
			}
		}
		w.line("System --> %s : response", actor)
		w.line("deactivate System")
	}

	if len(actions) > 1 {
		w.blank()
		w.line("== Error Handling ==")
		w.line("%s -> System : invalid request", actor)
		w.line("activate System")
		w.line("System -> System : validate request")
		w.line("note right : validation fails")
		w.line("System --> %s : error response", actor)
		w.line("deactivate System")
	}
	w.line("@enduml")
}

func classDiagram(w *writer, e model.Entities) {
	w.line("@startuml")
	w.line("title Class Diagram")
	w.blank()

	for _, o := range e.Objects {
		w.line("class %s {", className(o))
		for _, f := range fieldsFor(o) {
			w.line("  -%s: %s", f.name, f.kind)
		}
		w.line("}")
		w.blank()
	}

	groups := groupActions(actionsOrFallback(e))
	for _, g := range groups {
		w.line("class %s {", ServiceName(g.group))
		for _, a := range g.actions {
			w.line("  +%s(%s): Result", methodName(a), serviceParams(e))
		}
		w.line("}")
		w.blank()
	}

	for _, g := range groups {
		for _, o := range e.Objects {
			w.line("%s --> %s : %s", ServiceName(g.group), className(o), relationLabel(g.group))
		}
	}
	w.line("@enduml")
}

func serviceParams(e model.Entities) string {
	if len(e.Objects) == 0 {
		return "actor: Actor, request: Request"
	}
	return fmt.Sprintf("actor: Actor, %s: %s", util.CamelCase(e.Objects[0]), className(e.Objects[0]))
}

func relationLabel(g ActionGroup) string {
	switch g {
	case GroupManagement:
		return "manages"
	case GroupQuery:
		return "reads"
	case GroupTransfer:
		return "transfers"
	case GroupWorkflow:
		return "drives"
	case GroupAuthentication:
		return "guards"
	}
	return "uses"
}
