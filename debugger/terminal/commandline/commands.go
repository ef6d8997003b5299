// This file is part of Ultra64.
//
// Ultra64 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Ultra64 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Ultra64.  If not, see <https://www.gnu.org/licenses/>.

package commandline

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ultra64emu/ultra64/curated"
)

// placeholder types.
const (
	PlaceholderNumber = "%N"
	PlaceholderString = "%S"
	PlaceholderAny    = "%A"
)

// Argument describes one argument of a command.
type Argument struct {
	// options are upper case keywords or a single placeholder
	Options  []string
	Optional bool
}

func (arg Argument) String() string {
	s := strings.Join(arg.Options, "|")
	if arg.Optional {
		return fmt.Sprintf("[%s]", s)
	}
	return fmt.Sprintf("(%s)", s)
}

func (arg Argument) placeholder() string {
	if len(arg.Options) == 1 && strings.HasPrefix(arg.Options[0], "%") {
		return arg.Options[0]
	}
	return ""
}

// Command is a single parsed template entry.
type Command struct {
	Keyword   string
	Arguments []Argument
}

func (cmd Command) String() string {
	s := strings.Builder{}
	s.WriteString(cmd.Keyword)
	for _, a := range cmd.Arguments {
		s.WriteString(" ")
		s.WriteString(a.String())
	}
	return s.String()
}

// Commands is the root of the parsed template.
type Commands struct {
	cmds []Command
}

// ParseCommandTemplate turns a string representation of a command template
// into a Commands instance.
func ParseCommandTemplate(template []string) (*Commands, error) {
	cmds := &Commands{}

	for _, t := range template {
		f := strings.Fields(t)
		if len(f) == 0 {
			return nil, curated.Errorf("commandline: empty template entry")
		}

		cmd := Command{Keyword: strings.ToUpper(f[0])}
		if cmd.Keyword[0] == '%' || strings.ContainsAny(cmd.Keyword, "[]()|") {
			return nil, curated.Errorf("commandline: invalid keyword (%s)", f[0])
		}
		if _, ok := cmds.find(cmd.Keyword); ok {
			return nil, curated.Errorf("commandline: duplicate keyword (%s)", cmd.Keyword)
		}

		for _, a := range f[1:] {
			var arg Argument

			switch {
			case strings.HasPrefix(a, "[") && strings.HasSuffix(a, "]"):
				arg.Optional = true
			case strings.HasPrefix(a, "(") && strings.HasSuffix(a, ")"):
			default:
				return nil, curated.Errorf("commandline: unbracketed argument (%s) in %s", a, cmd.Keyword)
			}

			for _, o := range strings.Split(a[1:len(a)-1], "|") {
				if o == "" {
					return nil, curated.Errorf("commandline: empty option in %s", cmd.Keyword)
				}
				arg.Options = append(arg.Options, strings.ToUpper(o))
			}

			// placeholders can not be mixed with keywords
			if len(arg.Options) > 1 {
				for _, o := range arg.Options {
					if strings.HasPrefix(o, "%") {
						return nil, curated.Errorf("commandline: placeholder in option list (%s) in %s", a, cmd.Keyword)
					}
				}
			}

			cmd.Arguments = append(cmd.Arguments, arg)
		}

		cmds.cmds = append(cmds.cmds, cmd)
	}

	sort.Slice(cmds.cmds, func(i, j int) bool {
		return cmds.cmds[i].Keyword < cmds.cmds[j].Keyword
	})

	return cmds, nil
}

func (cmds Commands) find(keyword string) (Command, bool) {
	keyword = strings.ToUpper(keyword)
	for _, c := range cmds.cmds {
		if c.Keyword == keyword {
			return c, true
		}
	}
	return Command{}, false
}

// Keywords returns the sorted list of command keywords.
func (cmds Commands) Keywords() []string {
	k := make([]string, len(cmds.cmds))
	for i, c := range cmds.cmds {
		k[i] = c.Keyword
	}
	return k
}

// Usage returns the template of the named command.
func (cmds Commands) Usage(keyword string) (string, bool) {
	c, ok := cmds.find(keyword)
	if !ok {
		return "", false
	}
	return c.String(), true
}

func (cmds Commands) String() string {
	s := strings.Builder{}
	for _, c := range cmds.cmds {
		s.WriteString(c.String())
		s.WriteString("\n")
	}
	return s.String()
}
