package models

// Option is a closed-enumeration entry offered by the piece form selects.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Closed enumerations of the piece classification fields.
var (
	CutTypes = []Option{
		{Value: "frente", Label: "Frente"},
		{Value: "aba", Label: "Aba"},
		{Value: "lateral", Label: "Lateral"},
	}

	ProductTypes = []Option{
		{Value: "americano", Label: "Americano"},
		{Value: "trucker", Label: "Trucker"},
	}

	Positions = []Option{
		{Value: "frente", Label: "Frente"},
		{Value: "traseira", Label: "Traseira"},
	}

	Materials = []Option{
		{Value: "linho", Label: "Linho"},
	}

	MaterialColors = []Option{
		{Value: "azul marinho", Label: "Azul Marinho"},
		{Value: "laranja", Label: "Laranja"},
	}
)

// OrderOption is a numeric display-order choice offered by the piece form.
type OrderOption struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

// DisplayOrders are the selectable layer positions of a piece.
var DisplayOrders = []OrderOption{
	{Value: 1, Label: "1"},
	{Value: 2, Label: "2"},
	{Value: 3, Label: "3"},
	{Value: 4, Label: "4"},
	{Value: 5, Label: "5"},
}

// ValidOption reports whether value is one of the enumeration's values.
// Empty values are accepted; the mapper applies the default.
func ValidOption(options []Option, value string) bool {
	if value == "" {
		return true
	}
	for _, opt := range options {
		if opt.Value == value {
			return true
		}
	}
	return false
}
