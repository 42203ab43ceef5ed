package layout

// Cords is a single 0-based column/row coordinate pair.
type Cords struct {
	Col int
	Row int
}

// ZeroCords is the coordinate pair at the origin.
var ZeroCords = Cords{Col: 0, Row: 0}

// Rectangle is the axis-aligned region between an upper-left and a
// down-right coordinate pair, inclusive of both corners.
type Rectangle struct {
	UpperLeft Cords
	DownRight Cords
}

// NewRectangle builds a Rectangle from its two corners.
func NewRectangle(upperLeft, downRight Cords) Rectangle {
	return Rectangle{UpperLeft: upperLeft, DownRight: downRight}
}

// NewRectangleFromWindowSize builds the full-screen rectangle for a
// terminal of the given width and height in cells: (0,0) to (cols-1,
// rows-1).
func NewRectangleFromWindowSize(cols, rows int) Rectangle {
	return Rectangle{
		UpperLeft: ZeroCords,
		DownRight: Cords{Col: cols - 1, Row: rows - 1},
	}
}
