package render

// Column defines one fixed-width table column. Truncate columns clip values
// to Width; the final column has Truncate=false and word-wraps instead.
type Column struct {
	Name     string
	Width    int
	Truncate bool
}

// Columns returns the column spec for the process table. It is built once at
// startup and passed unchanged to every rendering call.
func Columns() []Column {
	return []Column{
		{Name: "USER", Width: 10, Truncate: true},
		{Name: "PID", Width: 7, Truncate: true},
		{Name: "%CPU", Width: 5, Truncate: true},
		{Name: "%MEM", Width: 5, Truncate: true},
		{Name: "VSZ", Width: 9, Truncate: true},
		{Name: "RSS", Width: 8, Truncate: true},
		{Name: "TTY", Width: 8, Truncate: true},
		{Name: "STAT", Width: 5, Truncate: true},
		{Name: "START", Width: 6, Truncate: true},
		{Name: "TIME", Width: 8, Truncate: true},
		{Name: "COMMAND", Width: 40, Truncate: false},
	}
}
