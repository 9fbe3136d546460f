package mcp

import "github.com/mark3labs/mcp-go/mcp"

var addToolDef = mcp.NewTool("roster_add",
	mcp.WithDescription("Add a student to the front of the roster. Fails with DUPLICATE_ID if a live student already has the id, or ROSTER_FULL at capacity."),
	mcp.WithNumber("id", mcp.Required(), mcp.Description("Student id (integer, unique among live students)")),
	mcp.WithString("name", mcp.Required(), mcp.Description("Student name (1-49 characters)")),
	mcp.WithNumber("grade", mcp.Required(), mcp.Description("Grade (any finite number)")),
)

var existsToolDef = mcp.NewTool("roster_exists",
	mcp.WithDescription("Check whether a live student has the id."),
	mcp.WithNumber("id", mcp.Required(), mcp.Description("Student id")),
)

var deleteToolDef = mcp.NewTool("roster_delete",
	mcp.WithDescription("Delete a student. The deletion can be reverted with roster_undo unless the undo stack is full (undoable=false)."),
	mcp.WithNumber("id", mcp.Required(), mcp.Description("Student id")),
)

var undoToolDef = mcp.NewTool("roster_undo",
	mcp.WithDescription("Restore the most recently deleted student. The undo entry is consumed even if the restore fails with DUPLICATE_ID."),
)

var searchToolDef = mcp.NewTool("roster_search",
	mcp.WithDescription("Find live students with the id. An empty result is not an error."),
	mcp.WithNumber("id", mcp.Required(), mcp.Description("Student id")),
)

var listToolDef = mcp.NewTool("roster_list",
	mcp.WithDescription("List all students in current roster order (most recently added first unless sorted)."),
)

var sortToolDef = mcp.NewTool("roster_sort",
	mcp.WithDescription("Sort the roster in place by id, name, or grade. Students with equal keys keep their relative order."),
	mcp.WithString("key", mcp.Required(), mcp.Enum("id", "name", "grade"), mcp.Description("Sort key")),
	mcp.WithBoolean("ascending", mcp.Description("Sort direction (default: true)")),
)

var statusToolDef = mcp.NewTool("roster_status",
	mcp.WithDescription("Report roster size, capacity, and undo depth."),
)
