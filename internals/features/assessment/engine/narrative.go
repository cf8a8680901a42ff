// internals/features/assessment/engine/narrative.go
package engine

import "strings"

/* =======================================================================
   Synthèse narrative : composition par tables de correspondance
   (bande de score, secteur, tranche de taille) → phrases fixes.
======================================================================= */

// Seuil faiblesse/force du paragraphe sectoriel
const sectorStrengthThreshold = 60.0

var openings = map[Band]string{
	BandFragile:   "Votre score traduit une compétitivité fragile : votre entreprise est aujourd'hui exposée aux mouvements de consolidation de son marché.",
	BandResilient: "Votre score témoigne d'une bonne résilience : votre entreprise dispose d'assises solides pour aborder les prochaines années.",
	BandLeader:    "Votre score vous place parmi les leaders de votre marché : vous êtes en position de force pour dicter le tempo de la consolidation.",
}

// sectorParagraphs[secteur] = [faiblesse (<60), force (≥60)]
var sectorParagraphs = map[Sector][2]string{
	SectorIndustry: {
		"Dans l'industrie et le BTP, vos marges et votre outil de production restent sous pression : la modernisation de l'appareil productif et l'adossement à un groupe structuré sont des leviers immédiats.",
		"Dans l'industrie et le BTP, votre outil de production et votre positionnement prix vous donnent un avantage durable face à une concurrence encore très fragmentée.",
	},
	SectorServices: {
		"Dans les services B2B, votre dépendance à quelques comptes clés et un positionnement prix peu différencié limitent votre valorisation : la spécialisation sectorielle est votre priorité.",
		"Dans les services B2B, votre récurrence de revenus et votre expertise reconnue constituent une base solide pour absorber des confrères plus petits.",
	},
	SectorRetail: {
		"Dans le commerce et le retail, la pression sur les prix et la transition digitale fragilisent votre position : un rapprochement avec un acteur disposant d'une plateforme e-commerce est à étudier.",
		"Dans le commerce et le retail, votre maîtrise du mix prix/expérience client vous distingue nettement d'un marché en pleine recomposition.",
	},
	SectorTech: {
		"Dans la tech et le SaaS, votre effort d'innovation reste en deçà des standards du secteur : sans accélération R&D, votre fenêtre de sortie se referme rapidement.",
		"Dans la tech et le SaaS, votre niveau d'innovation et votre position de marché vous placent dans le quadrant le plus recherché par les acquéreurs et les fonds.",
	},
	SectorTransport: {
		"Dans le transport et la logistique, la pression sur les coûts et la digitalisation des flux rebattent les cartes : la taille critique devient une condition de survie.",
		"Dans le transport et la logistique, votre maillage et l'optimisation de vos opérations vous positionnent en consolidateur naturel de votre zone.",
	},
	SectorOther: {
		"Sur votre marché, vos fondamentaux appellent un renforcement rapide : un diagnostic approfondi permettrait d'identifier les leviers de création de valeur prioritaires.",
		"Sur votre marché, vos fondamentaux sont sains et vous donnent la latitude de choisir votre trajectoire : croissance organique, build-up ou cession au bon moment.",
	},
}

// sizeClosings : TPE | PME/ETI | Groupe
var sizeClosings = [3]string{
	"À l'échelle d'une TPE, chaque point de compétitivité pèse double : un adossement bien négocié peut sécuriser la valeur que vous avez créée.",
	"Pour une entreprise de votre taille, la croissance externe ciblée est le levier le plus rapide pour changer de catégorie avant la prochaine vague de transmissions.",
	"À l'échelle d'un groupe, votre enjeu n'est plus de résister à la consolidation mais de l'orchestrer : le marché offre un vivier de cibles sans précédent.",
}

func sizeBand(size CompanySize) int {
	switch size {
	case SizeSmall:
		return 0
	case SizeCorp:
		return 2
	default: // Medium, Large
		return 1
	}
}

// ComposeNarrative assemble ouverture + paragraphe sectoriel + conclusion taille.
// Composition pure, sans aucune génération libre.
func ComposeNarrative(ratio float64, sector Sector, size CompanySize) string {
	parts := make([]string, 0, 3)

	parts = append(parts, openings[BandOf(ratio)])

	para, ok := sectorParagraphs[sector]
	if !ok {
		para = sectorParagraphs[SectorOther]
	}
	if ratio < sectorStrengthThreshold {
		parts = append(parts, para[0])
	} else {
		parts = append(parts, para[1])
	}

	parts = append(parts, sizeClosings[sizeBand(size)])

	return strings.Join(parts, "\n\n")
}
