package generator

import (
	"strings"

	"prism/src/util"
)

// ActionGroup clusters actions into one service class
type ActionGroup string

const (
	GroupManagement     ActionGroup = "Management"
	GroupQuery          ActionGroup = "Query"
	GroupAuthentication ActionGroup = "Authentication"
	GroupTransfer       ActionGroup = "Transfer"
	GroupWorkflow       ActionGroup = "Workflow"
	GroupOperation      ActionGroup = "Operation"
)

var actionGroups = map[string]ActionGroup{
	"login": GroupAuthentication, "logout": GroupAuthentication, "register": GroupAuthentication,
	"authenticate": GroupAuthentication, "authorize": GroupAuthentication, "sign": GroupAuthentication,

	"view": GroupQuery, "see": GroupQuery, "display": GroupQuery, "show": GroupQuery, "list": GroupQuery,
	"search": GroupQuery, "find": GroupQuery, "filter": GroupQuery, "sort": GroupQuery, "browse": GroupQuery,
	"read": GroupQuery, "retrieve": GroupQuery, "query": GroupQuery, "check": GroupQuery,
	"monitor": GroupQuery, "track": GroupQuery, "review": GroupQuery, "compare": GroupQuery, "access": GroupQuery,

	"upload": GroupTransfer, "download": GroupTransfer, "export": GroupTransfer, "import": GroupTransfer,
	"send": GroupTransfer, "receive": GroupTransfer, "share": GroupTransfer, "transfer": GroupTransfer,
	"sync": GroupTransfer, "print": GroupTransfer, "publish": GroupTransfer,

	"submit": GroupWorkflow, "approve": GroupWorkflow, "reject": GroupWorkflow, "assign": GroupWorkflow,
	"schedule": GroupWorkflow, "cancel": GroupWorkflow, "confirm": GroupWorkflow, "book": GroupWorkflow,
	"invite": GroupWorkflow, "notify": GroupWorkflow, "subscribe": GroupWorkflow, "unsubscribe": GroupWorkflow,
	"checkout": GroupWorkflow, "pay": GroupWorkflow, "purchase": GroupWorkflow, "buy": GroupWorkflow,
	"refund": GroupWorkflow,

	"create": GroupManagement, "add": GroupManagement, "update": GroupManagement, "edit": GroupManagement,
	"modify": GroupManagement, "delete": GroupManagement, "remove": GroupManagement, "manage": GroupManagement,
	"save": GroupManagement, "store": GroupManagement, "archive": GroupManagement, "restore": GroupManagement,
	"configure": GroupManagement, "change": GroupManagement, "reset": GroupManagement, "write": GroupManagement,
	"enter": GroupManagement, "select": GroupManagement, "rate": GroupManagement, "comment": GroupManagement,
}

// GroupOf returns the group of an action; unknown actions are Operation
func GroupOf(action string) ActionGroup {
	if g, ok := actionGroups[firstWord(action)]; ok {
		return g
	}
	return GroupOperation
}

// ServiceName returns the class name of a group's service
func ServiceName(g ActionGroup) string {
	return string(g) + "Service"
}

type serviceGroup struct {
	group   ActionGroup
	actions []string
}

// groupActions groups actions in order of each group's first action
func groupActions(actions []string) []serviceGroup {
	var groups []serviceGroup
	index := make(map[ActionGroup]int)
	for _, a := range actions {
		g := GroupOf(a)
		i, ok := index[g]
		if !ok {
			i = len(groups)
			index[g] = i
			groups = append(groups, serviceGroup{group: g})
		}
		groups[i].actions = append(groups[i].actions, a)
	}
	return groups
}

func isAuthentication(action string) bool {
	switch firstWord(action) {
	case "login", "authenticate", "sign":
		return true
	}
	return false
}

// shouldConnect decides whether an actor is linked to a use case
func shouldConnect(actor, action string) bool {
	actor = strings.ToLower(actor)
	action = strings.ToLower(action)

	switch {
	case strings.Contains(actor, "admin"):
		return true
	case containsAny(actor, "user", "customer", "client"):
		return containsAny(action, "create", "update", "view", "login", "register", "submit", "request")
	case containsAny(actor, "system", "service"):
		return containsAny(action, "process", "validate", "send", "receive", "generate")
	}
	return true
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func firstWord(s string) string {
	if f := strings.Fields(strings.ToLower(s)); len(f) > 0 {
		return f[0]
	}
	return ""
}

func methodName(action string) string {
	if name := util.CamelCase(action); name != "" {
		return name
	}
	return "perform"
}
