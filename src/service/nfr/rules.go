package nfr

import "prism/src/model"

type rule struct {
	category    model.NfrCategory
	triggers    []string // nil means always applies
	requirement string
	rationale   string
	criteria    []string
	priority    model.NfrPriority
}

var rules = []rule{
	{
		category:    model.NfrSecurity,
		requirement: "All protected operations must require authentication and enforce role-based authorization",
		rationale:   "Every feature that exposes data needs a defined access boundary",
		criteria: []string{
			"Unauthenticated requests to protected operations are rejected",
			"Users can only perform actions permitted by their role",
		},
		priority: model.MustHave,
	},
	{
		category:    model.NfrSecurity,
		triggers:    []string{"login", "log in", "sign in", "password", "credential", "credentials", "authenticate"},
		requirement: "Accounts must be locked for 15 minutes after 5 consecutive failed login attempts",
		rationale:   "Credential entry points are the main target of brute-force attacks",
		criteria: []string{
			"The 6th attempt within the lockout window is refused",
			"Passwords are stored with a salted adaptive hash such as bcrypt or Argon2",
		},
		priority: model.MustHave,
	},
	{
		category:    model.NfrSecurity,
		triggers:    []string{"payment", "pay", "card", "checkout", "purchase", "refund", "invoice"},
		requirement: "Payment data must be handled in compliance with PCI DSS and encrypted in transit with TLS 1.2 or later",
		rationale:   "Payment flows carry regulated cardholder data",
		criteria: []string{
			"No full card number is stored or logged",
			"All payment endpoints reject non-TLS connections",
		},
		priority: model.MustHave,
	},
	{
		category:    model.NfrSecurity,
		triggers:    []string{"personal", "profile", "email", "address", "phone", "patient", "customer data"},
		requirement: "Personal data must be encrypted at rest and every access to it must be audited",
		rationale:   "Personal data is subject to privacy regulation such as GDPR",
		criteria: []string{
			"Personal fields are encrypted in storage",
			"Audit log entries record who read or changed personal data",
		},
		priority: model.MustHave,
	},
	{
		category:    model.NfrSecurity,
		triggers:    []string{"upload", "attachment", "import"},
		requirement: "Uploaded files must be scanned for malware and validated against an allow-list of file types",
		rationale:   "File uploads are a common injection vector",
		criteria: []string{
			"Files with disallowed types are rejected with a clear error",
			"Infected files are quarantined and never served",
		},
		priority: model.ShouldHave,
	},
	{
		category:    model.NfrPerformance,
		requirement: "Response time for user-facing operations must not exceed 2 seconds for 95% of requests",
		rationale:   "Users abandon interactions that feel slow",
		criteria: []string{
			"p95 response time is 2 seconds or less under expected load",
			"p99 response time is 5 seconds or less",
		},
		priority: model.MustHave,
	},
	{
		category:    model.NfrPerformance,
		triggers:    []string{"search", "find", "filter", "query"},
		requirement: "Search results must be returned within 1 second for up to 100,000 records",
		rationale:   "Search is interactive and repeated many times per session",
		criteria: []string{
			"Search over 100,000 records completes in 1 second or less",
			"Results are paginated with at most 50 items per page",
		},
		priority: model.ShouldHave,
	},
	{
		category:    model.NfrPerformance,
		triggers:    []string{"upload", "download", "file", "files", "attachment"},
		requirement: "Files up to 50 MB must transfer within 30 seconds on a 10 Mbps connection",
		rationale:   "Large transfers block the user until they finish",
		criteria: []string{
			"A 50 MB file transfers in 30 seconds or less at 10 Mbps",
			"Progress is shown for transfers longer than 2 seconds",
		},
		priority: model.ShouldHave,
	},
	{
		category:    model.NfrPerformance,
		triggers:    []string{"report", "reports", "dashboard", "export", "analytics"},
		requirement: "Reports must be generated within 5 seconds for up to 12 months of data",
		rationale:   "Reporting queries scan large data volumes",
		criteria: []string{
			"A 12-month report renders in 5 seconds or less",
		},
		priority: model.ShouldHave,
	},
	{
		category:    model.NfrUsability,
		triggers:    []string{"form", "forms", "dashboard", "screen", "page", "interface", "ui", "easy", "intuitive", "user-friendly", "quickly"},
		requirement: "First-time users must complete the primary task without assistance in under 3 minutes",
		rationale:   "The requirement implies an interactive experience whose ease of use matters",
		criteria: []string{
			"At least 90% of test users finish the task unaided",
			"Validation errors are shown next to the field that caused them",
		},
		priority: model.ShouldHave,
	},
	{
		category:    model.NfrReliability,
		triggers:    []string{"payment", "order", "orders", "transfer", "transaction", "save", "backup", "sync", "booking"},
		requirement: "Completed transactions must never be lost and the system must recover to the last committed state after a failure",
		rationale:   "Losing committed business data causes financial and legal exposure",
		criteria: []string{
			"No committed transaction is lost in failover tests",
			"Service availability is at least 99.9% per month",
		},
		priority: model.MustHave,
	},
	{
		category:    model.NfrReliability,
		triggers:    []string{"notify", "notification", "email", "send", "message"},
		requirement: "Notifications must be delivered at least once with retries for up to 24 hours",
		rationale:   "Transient delivery failures should not silently drop messages",
		criteria: []string{
			"Failed deliveries are retried with exponential backoff",
		},
		priority: model.ShouldHave,
	},
	{
		category:    model.NfrScalability,
		triggers:    []string{"many", "concurrent", "thousands", "millions", "scale", "growth", "multiple", "all users", "peak"},
		requirement: "The system must support 10 times the initial concurrent user load without redesign",
		rationale:   "The requirement implies growing or high-volume usage",
		criteria: []string{
			"Load tests at 10x the baseline meet the performance targets",
			"Capacity can be added by scaling horizontally",
		},
		priority: model.ShouldHave,
	},
	{
		category:    model.NfrMaintainability,
		triggers:    []string{"rule", "rules", "policy", "configure", "configurable", "setting", "settings", "integration", "workflow"},
		requirement: "Business rules and settings must be configurable without code changes or redeployment",
		rationale:   "Rules and integrations change more often than the code around them",
		criteria: []string{
			"An administrator can change a rule and see it applied within 5 minutes",
		},
		priority: model.CouldHave,
	},
	{
		category:    model.NfrCompatibility,
		triggers:    []string{"mobile", "browser", "device", "devices", "tablet", "responsive"},
		requirement: "The feature must work on the latest two versions of Chrome, Firefox, Safari and Edge and on iOS and Android",
		rationale:   "Users reach the system from a range of devices",
		criteria: []string{
			"Automated UI tests pass on every supported browser",
		},
		priority: model.ShouldHave,
	},
	{
		category:    model.NfrCompatibility,
		triggers:    []string{"export", "import", "csv", "pdf", "excel", "api", "integration"},
		requirement: "Exchanged data must use documented standard formats such as CSV, JSON or PDF",
		rationale:   "Exported and imported data crosses system boundaries",
		criteria: []string{
			"Exported files open without errors in common tools",
			"API payloads validate against a published schema",
		},
		priority: model.ShouldHave,
	},
	{
		category:    model.NfrAccessibility,
		triggers:    []string{"user", "users", "customer", "customers", "visitor", "visitors", "form", "page", "screen", "view", "display", "dashboard"},
		requirement: "User interfaces must conform to WCAG 2.1 level AA",
		rationale:   "People using assistive technology must be able to complete the same tasks",
		criteria: []string{
			"All interactive elements are reachable by keyboard",
			"Text contrast ratio is at least 4.5:1",
		},
		priority: model.ShouldHave,
	},
}
