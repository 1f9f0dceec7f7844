package subsystems

import (
	"fmt"
	"strings"
)

// coreFiles are interface files owned by the cgroup core rather than a
// controller. They have dedicated operations and cannot be assigned.
var coreFiles = map[string]string{
	"cgroup.procs":           "use classify to move processes",
	"cgroup.threads":         "use classify to move processes",
	"cgroup.subtree_control": "use control to delegate controllers",
}

// Assignment is a literal value to be written to one interface file of a
// control group, e.g. cpu.max="50000 100000".
type Assignment struct {
	File  string
	Value string
}

func (a Assignment) String() string {
	return a.File + "=" + a.Value
}

// Controller returns the controller owning the file, i.e. the text before
// the first '.'. Files of the cgroup core return "".
func (a Assignment) Controller() string {
	name, _, _ := strings.Cut(a.File, ".")
	if name == "cgroup" {
		return ""
	}
	return name
}

// ParseAssignment parses "file=value". The value is taken literally and may
// itself contain '=' or be empty.
func ParseAssignment(s string) (Assignment, error) {
	file, value, ok := strings.Cut(s, "=")
	if !ok {
		return Assignment{}, fmt.Errorf("invalid restriction %q: expected file=value", s)
	}
	if err := validFile(file); err != nil {
		return Assignment{}, fmt.Errorf("invalid restriction %q: %v", s, err)
	}
	return Assignment{File: file, Value: value}, nil
}

func validFile(file string) error {
	for _, c := range file {
		if !(c == '_' || c == '.' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9') {
			return fmt.Errorf("file name contains invalid character %q", c)
		}
	}
	name, rest, ok := strings.Cut(file, ".")
	if !ok || name == "" || rest == "" {
		return fmt.Errorf("file name must be of the form CONTROLLER.SETTING")
	}
	if hint, ok := coreFiles[file]; ok {
		return fmt.Errorf("%s cannot be assigned, %s", file, hint)
	}
	return nil
}

// Required returns the controllers needed by the assignments, in the order
// they first appear.
func Required(as []Assignment) []string {
	var out []string
	seen := map[string]bool{}
	for _, a := range as {
		c := a.Controller()
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}

// Toggle enables or disables one controller for the children of a control
// group. Its text form is the token accepted by cgroup.subtree_control.
type Toggle struct {
	Controller string
	Enable     bool
}

func (t Toggle) String() string {
	if t.Enable {
		return "+" + t.Controller
	}
	return "-" + t.Controller
}

func ParseToggle(s string) (Toggle, error) {
	if len(s) < 2 || (s[0] != '+' && s[0] != '-') {
		return Toggle{}, fmt.Errorf("invalid controller %q: expected +NAME or -NAME, as in +cpu +memory", s)
	}
	name := s[1:]
	for _, c := range name {
		if !(c == '_' || c >= 'a' && c <= 'z') {
			return Toggle{}, fmt.Errorf("invalid controller %q: name contains %q", s, c)
		}
	}
	return Toggle{Controller: name, Enable: s[0] == '+'}, nil
}

// ParseToggles accepts tokens separated by commas, spaces or both.
func ParseToggles(args []string) ([]Toggle, error) {
	var out []Toggle
	for _, arg := range args {
		for _, tok := range strings.FieldsFunc(arg, func(r rune) bool { return r == ',' || r == ' ' }) {
			t, err := ParseToggle(tok)
			if err != nil {
				return nil, err
			}
			out = append(out, t)
		}
	}
	return out, nil
}
