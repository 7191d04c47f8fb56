package author

// Error codes reported by SaveUser.
const (
	CodeInvalidEmail       = "InvalidEmail"
	CodeDuplicateEmail     = "DuplicateEmail"
	CodeInvalidDisplayName = "InvalidDisplayName"
	CodeDatabaseError      = "DatabaseError"
)

// Error is a single save failure.
type Error struct {
	Code        string
	Description string
}

// Result of a save operation, Errors keeps the order the checks ran in.
type Result struct {
	Succeeded bool
	Errors    []Error
}

// Success returns a successful result.
func Success() Result {
	return Result{Succeeded: true}
}

// Failed returns a result with a single error.
func Failed(code, description string) Result {
	return Result{Errors: []Error{{Code: code, Description: description}}}
}

// FirstError returns the description of the first error, or "" on success.
func (r Result) FirstError() string {
	if len(r.Errors) == 0 {
		return ""
	}

	return r.Errors[0].Description
}

// PasswordChange is the input of ChangePassword.
type PasswordChange struct {
	UserName    string
	OldPassword string
	NewPassword string
}
