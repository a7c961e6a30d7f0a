package mdcode

// Block is a fenced sub-block found inside the value of a code node.
type Block struct {
	Lang      string
	Info      string
	Meta      Meta
	Body      string
	StartLine int
	EndLine   int
}

type Blocks []*Block
