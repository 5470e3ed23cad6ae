// Package model defines the journal's entity types and shared vocabularies.
package model

// DrinkType is the serving temperature a recipe targets.
type DrinkType string

const (
	DrinkHot       DrinkType = "Hot"
	DrinkIced      DrinkType = "Iced"
	DrinkHotOrIced DrinkType = "Hot/Iced"
)

// DrinkTypes lists the fixed drink-type vocabulary in display order.
var DrinkTypes = []DrinkType{DrinkHot, DrinkIced, DrinkHotOrIced}

// RoastLevels is the fixed 5-level roast vocabulary recipes draw from, in
// canonical order. Bean roast levels are free text and do not use this list.
var RoastLevels = []string{"Light", "Medium Light", "Medium", "Medium Dark", "Dark"}

// DripperAny marks a recipe as workable with any dripper. Facet lists pin it
// directly after the "All" entry.
const DripperAny = "전부 가능"

// FacetAll is the neutral facet selection that matches every recipe.
const FacetAll = "All"

// TastingRecord is one dated, scored tasting session logged against a bean.
type TastingRecord struct {
	ID           string   `json:"id"`
	Date         string   `json:"date"` // ISO-8601 instant
	Score        float64  `json:"score"`
	Memo         string   `json:"memo"`
	TastingNotes []string `json:"tastingNotes"`
}

// Bean is one catalogued coffee product.
//
// Score, Memo and MyNotes are the legacy single-record rating fields. They are
// kept so pre-migration payloads still decode; after migration they are zeroed
// and the history lives in TastingRecords.
type Bean struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Roastery     string   `json:"roastery"`
	Country      string   `json:"country"`
	Region       string   `json:"region,omitempty"`
	Farm         string   `json:"farm,omitempty"`
	Producer     string   `json:"producer,omitempty"`
	Variety      string   `json:"variety,omitempty"`
	Altitude     string   `json:"altitude,omitempty"`
	Process      string   `json:"process"`
	RoastLevel   string   `json:"roastLevel"`
	RoastDate    string   `json:"roastDate"`
	Price        float64  `json:"price"`
	ImageURL     string   `json:"imageUrl"`
	PurchaseURL  string   `json:"purchaseUrl,omitempty"`
	TastingNotes []string `json:"tastingNotes"`

	TastingRecords []TastingRecord `json:"tastingRecords,omitempty"`

	MyNotes []string `json:"myNotes"`
	Score   float64  `json:"score"`
	Memo    string   `json:"memo"`
}

// PourStep is one labeled interval of a recipe's brewing timeline. Times are
// seconds from recipe start; WaterAmount is the cumulative mass at the end of
// the step and AddedAmount the mass poured during it.
type PourStep struct {
	Label       string  `json:"label"`
	StartTime   float64 `json:"startTime"`
	EndTime     float64 `json:"endTime"`
	WaterAmount float64 `json:"waterAmount"`
	AddedAmount float64 `json:"addedAmount"`
}

// Recipe is a reusable pour-over brewing procedure. Steps are stored in
// authored order; that order defines the brew timeline and must be preserved.
type Recipe struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Type         DrinkType `json:"type"`
	RoastLevel   []string  `json:"roastLevel"`
	Dripper      string    `json:"dripper"`
	Filter       string    `json:"filter"`
	Grinder      string    `json:"grinder"`
	GrindSetting string    `json:"grindSetting"`
	WaterTemp    float64   `json:"waterTemp"`
	BeanAmount   float64   `json:"beanAmount"`
	WaterAmount  float64   `json:"waterAmount"`
	YouTubeID    string    `json:"youtubeId"`
	YouTubeStart float64   `json:"youtubeStart,omitempty"`

	// Optional advanced fields.
	PouringMethod string `json:"pouringMethod,omitempty"`
	FlowRate      string `json:"flowRate,omitempty"`
	WaterInfo     string `json:"waterInfo,omitempty"`
	Micron        string `json:"micron,omitempty"`

	Steps []PourStep `json:"steps"`
}

// TotalDuration returns the recipe's brew duration in seconds, defined by the
// final step's end time. Zero when the recipe has no steps.
func (r *Recipe) TotalDuration() float64 {
	if len(r.Steps) == 0 {
		return 0
	}
	return r.Steps[len(r.Steps)-1].EndTime
}

// Clone returns a deep copy. The data store hands out clones so callers can
// never alias its authoritative slices.
func (b Bean) Clone() Bean {
	out := b
	out.TastingNotes = cloneStrings(b.TastingNotes)
	out.MyNotes = cloneStrings(b.MyNotes)
	if b.TastingRecords != nil {
		out.TastingRecords = make([]TastingRecord, len(b.TastingRecords))
		for i, rec := range b.TastingRecords {
			out.TastingRecords[i] = rec.Clone()
		}
	}
	return out
}

// Clone returns a deep copy of the record.
func (t TastingRecord) Clone() TastingRecord {
	out := t
	out.TastingNotes = cloneStrings(t.TastingNotes)
	return out
}

// Clone returns a deep copy of the recipe, steps included.
func (r Recipe) Clone() Recipe {
	out := r
	out.RoastLevel = cloneStrings(r.RoastLevel)
	if r.Steps != nil {
		out.Steps = append([]PourStep(nil), r.Steps...)
	}
	return out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	return append([]string(nil), in...)
}
