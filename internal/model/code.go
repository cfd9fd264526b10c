package model

// Code identifies the rule a Diagnostic was produced by.
type Code string

const (
	// CodeUnreadable marks a file that could not be read or parsed.
	CodeUnreadable Code = "AID000"
	// CodeIDMissing marks a test without @allure.id.
	CodeIDMissing Code = "AID001"
	// CodeIDArgCount marks an @allure.id call without exactly one positional argument.
	CodeIDArgCount Code = "AID002"
	// CodeIDKeywords marks an @allure.id call with keyword arguments.
	CodeIDKeywords Code = "AID003"
	// CodeIDLiteral marks an @allure.id argument that is not a canonical positive-integer string.
	CodeIDLiteral Code = "AID004"
	// CodeIDMultiple marks a test with more than one @allure.id.
	CodeIDMultiple Code = "AID005"
	// CodeOwnerMissing marks a test without an owner label.
	CodeOwnerMissing Code = "AOWN001"
	// CodeOwnerEmpty marks an owner label whose value is empty or unreadable.
	CodeOwnerEmpty Code = "AOWN002"
)

var codeDescriptions = map[Code]string{
	CodeUnreadable:   "file unreadable or fails to parse",
	CodeIDMissing:    "identifier marker missing",
	CodeIDArgCount:   "identifier marker has wrong positional-argument count",
	CodeIDKeywords:   "identifier marker has keyword arguments",
	CodeIDLiteral:    "identifier marker argument is not a valid canonical positive-integer literal string",
	CodeIDMultiple:   "more than one identifier marker present",
	CodeOwnerMissing: "owner marker missing",
	CodeOwnerEmpty:   "owner marker present but value empty/invalid",
}

// Codes returns every known code in catalog order.
func Codes() []Code {
	return []Code{
		CodeUnreadable,
		CodeIDMissing,
		CodeIDArgCount,
		CodeIDKeywords,
		CodeIDLiteral,
		CodeIDMultiple,
		CodeOwnerMissing,
		CodeOwnerEmpty,
	}
}

// Valid reports whether c is one of the known codes.
func (c Code) Valid() bool {
	_, ok := codeDescriptions[c]
	return ok
}

// Description returns the catalog meaning of the code.
func (c Code) Description() string {
	return codeDescriptions[c]
}

func (c Code) String() string {
	return string(c)
}
