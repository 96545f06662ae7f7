package domain

// Summary is a stored summary record. It is a plain value; callers own
// every Summary and slice handed to them.
type Summary struct {
	ID   int64
	Name string
}

// CanonicalSummaries are the rows seeded by the storage migrations.
var CanonicalSummaries = []Summary{
	{ID: 1, Name: "Freezing"},
	{ID: 2, Name: "Bracing"},
	{ID: 3, Name: "Chilly"},
	{ID: 4, Name: "Cool"},
	{ID: 5, Name: "Mild"},
	{ID: 6, Name: "Warm"},
	{ID: 7, Name: "Balmy"},
	{ID: 8, Name: "Hot"},
	{ID: 9, Name: "Sweltering"},
	{ID: 10, Name: "Scorching"},
}
