package reports

// Params carries the parameters of the parameterized reports. Reports that
// take no parameters ignore it.
type Params struct {
	N     int
	Genre string
}

// DefaultParams returns the parameter defaults used by the CLI and TUI.
func DefaultParams() Params {
	return Params{N: 10, Genre: "Rock"}
}

// Descriptor describes one report in the catalog: its stable name, a usage
// line, which parameters it reads, and how to compute its table form.
type Descriptor struct {
	Name       string
	Usage      string
	TakesN     bool
	TakesGenre bool
	Run        func(*Engine, Params) (*Table, error)
}

var catalog = []Descriptor{
	{
		Name:  "senior-employees",
		Usage: "Employees tied at the maximum seniority level",
		Run:   seniorMostEmployeesTable,
	},
	{
		Name:  "invoices-by-country",
		Usage: "Invoice count per billing country",
		Run:   invoiceCountByCountryTable,
	},
	{
		Name:   "top-invoices",
		Usage:  "Largest invoice totals",
		TakesN: true,
		Run:    topInvoiceTotalsTable,
	},
	{
		Name:  "top-city",
		Usage: "City with the highest invoice revenue",
		Run:   topCityByRevenueTable,
	},
	{
		Name:  "top-customer",
		Usage: "Customer with the highest total spend",
		Run:   topCustomerBySpendTable,
	},
	{
		Name:       "genre-listeners",
		Usage:      "Customers who bought tracks of a genre, by email",
		TakesGenre: true,
		Run:        genreListenersTable,
	},
	{
		Name:       "top-artists",
		Usage:      "Artists with the most tracks in a genre",
		TakesN:     true,
		TakesGenre: true,
		Run:        topArtistsByGenreTable,
	},
	{
		Name:  "long-tracks",
		Usage: "Tracks longer than the average duration",
		Run:   aboveAverageDurationTable,
	},
	{
		Name:  "best-seller-spend",
		Usage: "Customer spend on the best-selling artist",
		Run:   bestSellingArtistSpendTable,
	},
	{
		Name:  "top-genre-per-country",
		Usage: "Most purchased genre per billing country",
		Run:   topGenrePerCountryTable,
	},
	{
		Name:  "top-spender-per-country",
		Usage: "Biggest-spending customer per billing country",
		Run:   topSpenderPerCountryTable,
	},
}

// Catalog returns the report descriptors in display order.
func Catalog() []Descriptor {
	return catalog
}
