// Package command holds the management commands the CLI understands and
// dispatches each one as a single request to the management service.
package command

import (
	"fmt"
)

// DefaultBottleType is used by Create when no type is given.
const DefaultBottleType = "Gaming"

// Command is one parsed user intention. The set of implementations is closed.
type Command interface {
	// Method is the Management RPC the command is sent as.
	Method() string
	fmt.Stringer

	command()
}

type Create struct {
	Name string
	Type string
}

type Delete struct {
	Name string
}

type List struct{}

type Start struct {
	Name string
}

type Stop struct {
	Name string
}

type Restart struct {
	Name string
}

func (Create) Method() string  { return "CreateBottle" }
func (Delete) Method() string  { return "DeleteBottle" }
func (List) Method() string    { return "ListBottles" }
func (Start) Method() string   { return "StartBottle" }
func (Stop) Method() string    { return "StopBottle" }
func (Restart) Method() string { return "RestartBottle" }

func (c Create) String() string  { return fmt.Sprintf("create %q (type %q)", c.Name, c.Type) }
func (c Delete) String() string  { return fmt.Sprintf("delete %q", c.Name) }
func (List) String() string      { return "list" }
func (c Start) String() string   { return fmt.Sprintf("start %q", c.Name) }
func (c Stop) String() string    { return fmt.Sprintf("stop %q", c.Name) }
func (c Restart) String() string { return fmt.Sprintf("restart %q", c.Name) }

func (Create) command()  {}
func (Delete) command()  {}
func (List) command()    {}
func (Start) command()   {}
func (Stop) command()    {}
func (Restart) command() {}
