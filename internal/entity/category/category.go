package category

type Domain string

const (
	Income  Domain = "income"
	Expense Domain = "expense"
	Goal    Domain = "goal"
)

const OtherCode = "other"

type Descriptor struct {
	Value string
	Label string
	Icon  string
}

var incomeCategories = []Descriptor{
	{Value: "salary", Label: "Salary", Icon: "💼"},
	{Value: "freelance", Label: "Freelance", Icon: "💻"},
	{Value: "investment", Label: "Investment", Icon: "📈"},
	{Value: "bonus", Label: "Bonus", Icon: "🎁"},
	{Value: OtherCode, Label: "Other", Icon: "🧩"},
}

var expenseCategories = []Descriptor{
	{Value: "food", Label: "Food", Icon: "🍔"},
	{Value: "rent", Label: "Rent", Icon: "🏠"},
	{Value: "transport", Label: "Transport", Icon: "🚗"},
	{Value: "utilities", Label: "Utilities", Icon: "💡"},
	{Value: "entertainment", Label: "Entertainment", Icon: "🎬"},
	{Value: "health", Label: "Health", Icon: "❤️‍🩹"},
	{Value: "shopping", Label: "Shopping", Icon: "🛍️"},
	{Value: "travel", Label: "Travel", Icon: "✈️"},
	{Value: OtherCode, Label: "Other", Icon: "🧾"},
}

var goalCategories = []Descriptor{
	{Value: "vacation", Label: "Vacation", Icon: "✈️"},
	{Value: "home_renovation", Label: "Home Renovation", Icon: "🛠️"},
	{Value: "emergency_fund", Label: "Emergency Fund", Icon: "🚑"},
	{Value: "new_car", Label: "New Car", Icon: "🚗"},
	{Value: "education", Label: "Education", Icon: "🎓"},
	{Value: "investment", Label: "Investment", Icon: "📈"},
	{Value: "debt_repayment", Label: "Debt Repayment", Icon: "💳"},
	{Value: "wedding", Label: "Wedding", Icon: "💍"},
	{Value: OtherCode, Label: "Other", Icon: "🎯"},
}

var registry = map[Domain][]Descriptor{
	Income:  incomeCategories,
	Expense: expenseCategories,
	Goal:    goalCategories,
}

// List returns a copy of the ordered descriptors of a domain.
func List(d Domain) []Descriptor {
	src := registry[d]
	res := make([]Descriptor, len(src))
	copy(res, src)
	return res
}

// Lookup never fails: unknown codes resolve to the domain's "Other" entry.
func Lookup(d Domain, code string) Descriptor {
	if desc, ok := find(d, code); ok {
		return desc
	}
	return Default(d)
}

func Valid(d Domain, code string) bool {
	_, ok := find(d, code)
	return ok
}

func Default(d Domain) Descriptor {
	if desc, ok := find(d, OtherCode); ok {
		return desc
	}
	return Descriptor{Value: OtherCode, Label: "Other", Icon: "🧾"}
}

func find(d Domain, code string) (Descriptor, bool) {
	for _, desc := range registry[d] {
		if desc.Value == code {
			return desc, true
		}
	}
	return Descriptor{}, false
}

func (d Descriptor) String() string {
	return d.Icon + " " + d.Label
}
