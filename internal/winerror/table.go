package winerror

import "strings"

const namePrefix = "ERROR_"

// Info describes a single table entry.
type Info struct {
	Name        string
	Value       Code
	Description string
}

// Declaration order is preserved by All and by the CLI listing.
var table = [...]Info{
	{"ERROR_SUCCESS", ERROR_SUCCESS, "The operation completed successfully."},
	{"ERROR_FILE_NOT_FOUND", ERROR_FILE_NOT_FOUND, "The system cannot find the file specified."},
	{"ERROR_BAD_ENVIRONMENT", ERROR_BAD_ENVIRONMENT, "The environment is incorrect."},
	{"ERROR_BAD_FORMAT", ERROR_BAD_FORMAT, "An attempt was made to load a program with an incorrect format."},
	{"ERROR_NO_MORE_FILES", ERROR_NO_MORE_FILES, "There are no more files."},
	{"ERROR_BAD_COMMAND", ERROR_BAD_COMMAND, "The device does not recognize the command."},
	{"ERROR_READ_FAULT", ERROR_READ_FAULT, "The system cannot read from the specified device."},
	{"ERROR_INVALID_PARAMETER", ERROR_INVALID_PARAMETER, "The parameter is incorrect."},
	{"ERROR_PROC_NOT_FOUND", ERROR_PROC_NOT_FOUND, "The specified procedure could not be found."},
	{"ERROR_BAD_ARGUMENTS", ERROR_BAD_ARGUMENTS, "One or more arguments are not correct."},
	{"ERROR_BUSY", ERROR_BUSY, "The requested resource is in use."},
	{"ERROR_ALREADY_EXISTS", ERROR_ALREADY_EXISTS, "Cannot create a file when that file already exists."},
	{"ERROR_BAD_PIPE", ERROR_BAD_PIPE, "The pipe state is invalid."},
	{"ERROR_FAIL_SHUTDOWN", ERROR_FAIL_SHUTDOWN, "The system shutdown failed."},
	{"ERROR_FAIL_RESTART", ERROR_FAIL_RESTART, "The system restart failed."},
}

var byName = func() map[string]Code {
	m := make(map[string]Code, len(table))
	for _, info := range table {
		m[info.Name] = info.Value
	}
	return m
}()

// Lookup resolves a symbolic name to its code. Matching ignores case and the
// ERROR_ prefix may be omitted, so "busy" and "ERROR_BUSY" are equivalent.
// Unknown names report false.
func Lookup(name string) (Code, bool) {
	key := strings.ToUpper(strings.TrimSpace(name))
	if key == "" {
		return 0, false
	}
	if !strings.HasPrefix(key, namePrefix) {
		key = namePrefix + key
	}
	code, ok := byName[key]
	return code, ok
}

// All returns a copy of the table in declaration order.
func All() []Info {
	out := make([]Info, len(table))
	copy(out, table[:])
	return out
}

// Names returns every name bound to value. Values are not required to be
// unique, so more than one name may come back.
func Names(value Code) []string {
	var names []string
	for _, info := range table {
		if info.Value == value {
			names = append(names, info.Name)
		}
	}
	return names
}
