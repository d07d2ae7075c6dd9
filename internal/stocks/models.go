package stocks

// Snapshot is the derived equity record for one lookup: the GLOBAL_QUOTE
// trading fields merged with the OVERVIEW reference data. ChangePercent
// and PERatio stay as the provider's strings.
type Snapshot struct {
	Symbol        string
	Price         float64
	Open          float64
	PreviousClose float64
	Change        float64
	ChangePercent string
	Name          string
	Sector        string
	MarketCap     float64
	PERatio       string
	High52Week    float64
	Low52Week     float64
}
