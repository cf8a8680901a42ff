// internals/features/assessment/engine/battery.go
package engine

/* =========================
   Secteurs & tailles
   ========================= */

type Sector string

const (
	SectorIndustry  Sector = "Industry"
	SectorServices  Sector = "Services"
	SectorRetail    Sector = "Retail"
	SectorTech      Sector = "Tech"
	SectorTransport Sector = "Transport"
	SectorOther     Sector = "Other"
)

type CompanySize string

const (
	SizeSmall  CompanySize = "Small"
	SizeMedium CompanySize = "Medium"
	SizeLarge  CompanySize = "Large"
	SizeCorp   CompanySize = "Corp"
)

type SectorChoice struct {
	Label string `json:"label"`
	Value Sector `json:"value"`
}

type SizeChoice struct {
	Label string      `json:"label"`
	Value CompanySize `json:"value"`
}

var Sectors = []SectorChoice{
	{Label: "Industrie / BTP", Value: SectorIndustry},
	{Label: "Services B2B", Value: SectorServices},
	{Label: "Commerce / Retail", Value: SectorRetail},
	{Label: "Tech / SaaS", Value: SectorTech},
	{Label: "Transport / Logistique", Value: SectorTransport},
	{Label: "Autre", Value: SectorOther},
}

var Sizes = []SizeChoice{
	{Label: "< 1 M€ (TPE)", Value: SizeSmall},
	{Label: "1 - 10 M€ (PME)", Value: SizeMedium},
	{Label: "10 - 50 M€ (ETI)", Value: SizeLarge},
	{Label: "> 50 M€ (Groupe)", Value: SizeCorp},
}

// ParseSector valide un identifiant secteur; toute autre valeur est rejetée.
func ParseSector(raw string) (Sector, bool) {
	for _, sc := range Sectors {
		if string(sc.Value) == raw {
			return sc.Value, true
		}
	}
	return "", false
}

func ParseSize(raw string) (CompanySize, bool) {
	for _, sz := range Sizes {
		if string(sz.Value) == raw {
			return sz.Value, true
		}
	}
	return "", false
}

func SectorLabel(s Sector) string {
	for _, sc := range Sectors {
		if sc.Value == s {
			return sc.Label
		}
	}
	return string(s)
}

func SizeLabel(s CompanySize) string {
	for _, sz := range Sizes {
		if sz.Value == s {
			return sz.Label
		}
	}
	return string(s)
}

/* =========================
   Batterie de questions
   ========================= */

type Option struct {
	Label string `json:"label"`
	Score int    `json:"score"`
}

type Question struct {
	ID      int
	Text    string
	Options []Option
	Weight  map[Sector]float64
}

// Battery: configuration statique, jamais modifiée à l'exécution.
var Battery = []Question{
	{
		ID:   1,
		Text: "Comment situez-vous vos prix par rapport à la concurrence ?",
		Options: []Option{
			{Label: "Plus bas (Low cost)", Score: 10},
			{Label: "Alignés", Score: 20},
			{Label: "Plus élevés (Premium)", Score: 30},
		},
		Weight: map[Sector]float64{
			SectorIndustry: 1.2, SectorServices: 1.0, SectorRetail: 1.5,
			SectorTech: 0.8, SectorTransport: 1.1, SectorOther: 1.0,
		},
	},
	{
		ID:   2,
		Text: "Quelle est votre position sur votre marché ?",
		Options: []Option{
			{Label: "Challenger / Petit", Score: 5},
			{Label: "Moyenne / Équivalent", Score: 15},
			{Label: "Leader / Dominant", Score: 25},
		},
		Weight: map[Sector]float64{
			SectorIndustry: 1.5, SectorServices: 1.0, SectorRetail: 1.2,
			SectorTech: 2.0, SectorTransport: 1.2, SectorOther: 1.0,
		},
	},
	{
		ID:   3,
		Text: "Quelle part de CA réalisez-vous à l'export ?",
		Options: []Option{
			{Label: "Nulle (< 5%)", Score: 5},
			{Label: "Opportuniste (5-20%)", Score: 15},
			{Label: "Structurelle (> 20%)", Score: 25},
		},
		Weight: map[Sector]float64{
			SectorIndustry: 1.5, SectorServices: 0.8, SectorRetail: 0.5,
			SectorTech: 1.2, SectorTransport: 1.6, SectorOther: 1.0,
		},
	},
	{
		ID:   4,
		Text: "Niveau de digitalisation des opérations ?",
		Options: []Option{
			{Label: "Basique (Excel/Papier)", Score: 5},
			{Label: "Intermédiaire (ERP)", Score: 15},
			{Label: "Avancé (Data/IA/Auto)", Score: 25},
		},
		Weight: map[Sector]float64{
			SectorIndustry: 1.3, SectorServices: 1.2, SectorRetail: 1.0,
			SectorTech: 0.5, SectorTransport: 1.4, SectorOther: 1.0,
		},
	},
	{
		ID:   5,
		Text: "Part du CA réinvestie en innovation/R&D ?",
		Options: []Option{
			{Label: "Faible (< 2%)", Score: 0},
			{Label: "Moyenne (2-5%)", Score: 15},
			{Label: "Forte (> 5%)", Score: 25},
		},
		Weight: map[Sector]float64{
			SectorIndustry: 1.2, SectorServices: 1.0, SectorRetail: 0.8,
			SectorTech: 2.5, SectorTransport: 0.9, SectorOther: 1.0,
		},
	},
}
