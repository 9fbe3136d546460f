package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hpungsan/roster/internal/errors"
	"github.com/hpungsan/roster/internal/ops"
	"github.com/hpungsan/roster/internal/student"
)

const shellPrompt = "roster> "

const shellHelp = `Commands:
  add <id> <name...> <grade>   Add a student
  delete <id>                  Delete a student
  undo                         Restore the last deleted student
  sort <id|name|grade> [asc|desc]
  search <id>                  Show the student with this id
  exists <id>                  Check whether an id is in use
  list                         Display all students
  status                       Show roster size and undo depth
  help                         Show this help
  quit | exit                  Leave the shell
`

// shell is a line-oriented session over one roster.
type shell struct {
	roster *ops.Roster
	out    io.Writer
}

// runShell reads commands from in until quit, exit, or EOF.
func runShell(r *ops.Roster, in io.Reader, out io.Writer) error {
	sh := &shell{roster: r, out: out}
	fmt.Fprintln(out, "===== Student Grade Record Analyzer =====")
	fmt.Fprintln(out, `Type "help" for commands.`)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, shellPrompt)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if !sh.exec(strings.ToLower(fields[0]), fields[1:]) {
			return nil
		}
	}
}

// exec runs one command and reports whether the session continues.
func (sh *shell) exec(cmd string, args []string) bool {
	switch cmd {
	case "add":
		sh.add(args)
	case "delete", "del", "rm":
		sh.delete(args)
	case "undo":
		sh.undo()
	case "sort":
		sh.sort(args)
	case "search", "find":
		sh.search(args)
	case "exists":
		sh.exists(args)
	case "list", "ls":
		sh.list()
	case "status":
		sh.status()
	case "help", "?":
		fmt.Fprint(sh.out, shellHelp)
	case "quit", "exit":
		fmt.Fprintln(sh.out, "Exiting Student Grade Record Analyzer...")
		fmt.Fprintln(sh.out, "Goodbye!")
		return false
	default:
		fmt.Fprintf(sh.out, "Unknown command %q. Type \"help\" for commands.\n", cmd)
	}
	return true
}

func (sh *shell) add(args []string) {
	if len(args) < 3 {
		fmt.Fprintln(sh.out, "Usage: add <id> <name...> <grade>")
		return
	}
	id, ok := sh.parseID(args[0])
	if !ok {
		return
	}
	grade, err := strconv.ParseFloat(args[len(args)-1], 64)
	if err != nil {
		fmt.Fprintln(sh.out, "Invalid input! Grade must be a number.")
		return
	}

	_, err = ops.Add(sh.roster, ops.AddInput{
		ID:    id,
		Name:  strings.Join(args[1:len(args)-1], " "),
		Grade: grade,
	})
	switch {
	case errors.Is(err, errors.ErrDuplicateID):
		fmt.Fprintf(sh.out, "Error: Student ID %d already exists. Cannot add duplicate.\n", id)
	case err != nil:
		sh.fail(err)
	default:
		fmt.Fprintln(sh.out, "Student added successfully!")
	}
}

func (sh *shell) delete(args []string) {
	id, ok := sh.singleID("delete", args)
	if !ok {
		return
	}

	out, err := ops.Delete(sh.roster, ops.DeleteInput{ID: id})
	switch {
	case errors.Is(err, errors.ErrNotFound):
		fmt.Fprintln(sh.out, "Student not found.")
		return
	case err != nil:
		sh.fail(err)
		return
	}

	fmt.Fprintln(sh.out, "Student Deleted:")
	sh.table([]student.Record{out.Record})
	if out.Undoable {
		fmt.Fprintln(sh.out, "(Undo available)")
	} else {
		fmt.Fprintln(sh.out, "(Undo unavailable: undo history is full)")
	}
}

func (sh *shell) undo() {
	out, err := ops.Undo(sh.roster)
	switch {
	case errors.Is(err, errors.ErrStackEmpty):
		fmt.Fprintln(sh.out, "Undo stack empty.")
	case errors.Is(err, errors.ErrDuplicateID):
		fmt.Fprintf(sh.out, "Cannot undo! A student with ID %v already exists.\n", err.(*errors.RosterError).Details["id"])
	case err != nil:
		sh.fail(err)
	default:
		fmt.Fprintln(sh.out, "Undo successful! Student restored:")
		sh.table([]student.Record{out.Record})
	}
}

func (sh *shell) sort(args []string) {
	if len(args) < 1 || len(args) > 2 {
		fmt.Fprintln(sh.out, "Usage: sort <id|name|grade> [asc|desc]")
		return
	}
	ascending := true
	if len(args) == 2 {
		switch strings.ToLower(args[1]) {
		case "asc", "ascending":
		case "desc", "descending":
			ascending = false
		default:
			fmt.Fprintln(sh.out, "Invalid choice! Sort type must be asc or desc.")
			return
		}
	}

	if _, err := ops.Sort(sh.roster, ops.SortInput{Key: args[0], Ascending: &ascending}); err != nil {
		sh.fail(err)
		return
	}
	fmt.Fprintln(sh.out, "Student Record sorted successfully!")
}

func (sh *shell) search(args []string) {
	id, ok := sh.singleID("search", args)
	if !ok {
		return
	}

	status, err := ops.Status(sh.roster)
	if err != nil {
		sh.fail(err)
		return
	}
	if status.Total == 0 {
		fmt.Fprintln(sh.out, "No students available.")
		return
	}

	out, err := ops.Search(sh.roster, ops.SearchInput{ID: id})
	if err != nil {
		sh.fail(err)
		return
	}
	if !out.Found {
		fmt.Fprintln(sh.out, "ID not found.")
		return
	}
	sh.table(out.Items)
	fmt.Fprintln(sh.out, "Student Record found!")
}

func (sh *shell) exists(args []string) {
	id, ok := sh.singleID("exists", args)
	if !ok {
		return
	}

	out, err := ops.Exists(sh.roster, ops.ExistsInput{ID: id})
	if err != nil {
		sh.fail(err)
		return
	}
	if out.Exists {
		fmt.Fprintf(sh.out, "ID %d exists.\n", id)
	} else {
		fmt.Fprintf(sh.out, "ID %d is available.\n", id)
	}
}

func (sh *shell) list() {
	out, err := ops.List(sh.roster)
	if err != nil {
		sh.fail(err)
		return
	}
	if out.Total == 0 {
		fmt.Fprintln(sh.out, "No students found.")
		return
	}
	sh.table(out.Items)
}

func (sh *shell) status() {
	out, err := ops.Status(sh.roster)
	if err != nil {
		sh.fail(err)
		return
	}
	fmt.Fprintf(sh.out, "Students: %d/%d\nUndo depth: %d\nSession: %s\n",
		out.Total, out.Capacity, out.UndoDepth, out.SessionID)
}

// singleID parses the one id argument that cmd takes.
func (sh *shell) singleID(cmd string, args []string) (int, bool) {
	if len(args) != 1 {
		fmt.Fprintf(sh.out, "Usage: %s <id>\n", cmd)
		return 0, false
	}
	return sh.parseID(args[0])
}

func (sh *shell) parseID(s string) (int, bool) {
	id, err := strconv.Atoi(s)
	if err != nil {
		fmt.Fprintln(sh.out, "Invalid input! ID must be a number.")
		return 0, false
	}
	return id, true
}

func (sh *shell) table(records []student.Record) {
	fmt.Fprintln(sh.out)
	_ = student.WriteTable(sh.out, records)
}

// fail prints any other error in the CLI's [CODE] message form.
func (sh *shell) fail(err error) {
	if rErr, ok := err.(*errors.RosterError); ok {
		fmt.Fprintf(sh.out, "Error: [%s] %s\n", rErr.Code, rErr.Message)
		return
	}
	fmt.Fprintf(sh.out, "Error: %v\n", err)
}
