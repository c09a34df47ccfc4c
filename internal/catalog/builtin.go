package catalog

var builtin = []Descriptor{
	{ID: "local", DisplayName: "Local Time", Zone: LocalZone},
	{ID: "new_york", DisplayName: "New York", Zone: "America/New_York"},
	{ID: "london", DisplayName: "London", Zone: "Europe/London"},
	{ID: "tokyo", DisplayName: "Tokyo", Zone: "Asia/Tokyo"},
	{ID: "sydney", DisplayName: "Sydney", Zone: "Australia/Sydney"},
	{ID: "los_angeles", DisplayName: "Los Angeles", Zone: "America/Los_Angeles"},
	{ID: "paris", DisplayName: "Paris", Zone: "Europe/Paris"},
	{ID: "dubai", DisplayName: "Dubai", Zone: "Asia/Dubai"},
	{ID: "kolkata", DisplayName: "New Delhi", Zone: "Asia/Kolkata"},
	{ID: "sao_paulo", DisplayName: "São Paulo", Zone: "America/Sao_Paulo"},
}

var builtinSelection = []string{"local", "new_york", "london"}

// Default returns the built-in catalog.
func Default() *Catalog {
	c, err := New(builtin...)
	if err != nil {
		panic("catalog: built-in catalog is invalid: " + err.Error())
	}
	c, err = c.WithDefaultSelection(builtinSelection)
	if err != nil {
		panic("catalog: built-in selection is invalid: " + err.Error())
	}
	return c
}
