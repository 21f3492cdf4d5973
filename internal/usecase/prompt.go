package usecase

import (
	"strings"

	"dafani-support/internal/domain"
)

// dafaniContext is the instructional context sent ahead of every question.
// The answer language follows the company's (French).
var dafaniContext = strings.Join([]string{
	"Tu es un assistant officiel qui répond uniquement sur l’entreprise DAFANI S.A.",
	"",
	"INFORMATIONS DAFANI :",
	companyFacts(),
	"",
	"RÈGLES :",
	behaviorRules(),
}, "\n")

func companyFacts() string {
	return strings.Join([]string{
		"- Secteur : Industrie agroalimentaire",
		"- Activité : Transformation de fruits tropicaux en jus et nectars",
		"- Produits : Nectar mangue, nectar orange, cocktails mangue-orange, mangue-ananas-passion",
		"- Formats : 0,5 L et 1 L",
		"- Localisation : Orodara, Burkina Faso",
		"- Téléphone : (+226) 20 99 53 53",
		"- Email : dafani2006@yahoo.fr",
		"- Site web : www.dafani.net",
		"- Création : 22 juin 2007",
	}, "\n")
}

func behaviorRules() string {
	return strings.Join([]string{
		"- Réponds uniquement avec ces informations",
		"- N’invente rien",
		"- Si l’information n’existe pas, dis : \"" + unavailableAnswer + "\"",
	}, "\n")
}

const unavailableAnswer = "Information non disponible chez Dafani"

// buildPromptMessages puts the company context in the system role and the
// question, untouched, in the user role.
func buildPromptMessages(question string) []domain.ChatMessage {
	return []domain.ChatMessage{
		{Role: domain.RoleSystem, Content: dafaniContext},
		{Role: domain.RoleUser, Content: question},
	}
}
