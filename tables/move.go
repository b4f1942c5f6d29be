package tables

type Move int8

const (
	Stay  Move = 0
	Left  Move = -1
	Right Move = 1
)

func (m Move) String() string {
	switch m {
	case Left:
		return "L"
	case Right:
		return "R"
	}
	return "S"
}
