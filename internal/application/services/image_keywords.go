package services

import (
	"strings"
	"unicode"

	"github.com/samasante/backend/internal/domain/entities"
)

type ingredientTerm struct {
	term    string
	english string
}

// ingredientLexicon maps French and Wolof ingredient words onto English
// stock-photo search terms. Order decides which terms win.
var ingredientLexicon = []ingredientTerm{
	{"gingembre", "ginger"},
	{"lem", "lemon"},
	{"miel", "honey"},
	{"thym", "thyme"},
	{"menthe", "mint"},
	{"nana", "mint"},
	{"kinkeliba", "kinkeliba leaves"},
	{"argile", "clay"},
	{"ail", "garlic"},
	{"oignon", "onion"},
	{"moringa", "moringa"},
	{"nebeday", "moringa leaves"},
	{"attaya", "senegalese tea"},
	{"ditax", "ditax fruit"},
	{"charbon", "charcoal"},
	{"lin", "flax seed"},
	{"verveine", "verbena"},
	{"ananas", "pineapple"},
	{"fenouil", "fennel seed"},
	{"neem", "neem leaves"},
	{"baobab", "baobab fruit"},
	{"buy", "baobab fruit"},
	{"aloe", "aloe vera"},
	{"karité", "shea butter"},
	{"plantain", "plantain leaf"},
	{"coco", "coconut"},
	{"gnarr", "coconut"},
	{"girofle", "clove"},
	{"curcuma", "turmeric"},
	{"arachide", "peanut"},
	{"gerte", "peanut"},
	{"piment", "cayenne pepper"},
	{"citronnelle", "lemongrass"},
	{"camomille", "chamomile"},
	{"corossol", "soursop leaves"},
	{"lavande", "lavender"},
	{"bissap", "hibiscus flower"},
	{"goyave", "guava leaves"},
	{"carotte", "carrot"},
	{"riz", "rice"},
	{"cannelle", "cinnamon stick"},
	{"sucre", "sugar"},
	{"sel", "salt"},
}

type symptomHint struct {
	terms []string
	query string
}

var symptomHints = []symptomHint{
	{[]string{"toux", "soj"}, "cough remedy"},
	{[]string{"gorge", "baat"}, "sore throat remedy"},
	{[]string{"tête", "bop"}, "headache relief"},
	{[]string{"fièvre", "seuf"}, "fever remedy"},
	{[]string{"digestion"}, "digestive aid"},
	{[]string{"peau", "yaram"}, "skin remedy"},
	{[]string{"stress"}, "stress relief herb"},
	{[]string{"sommeil", "nelaw"}, "sleep aid herb"},
}

const maxQueryTerms = 2

// DeriveImageQuery builds a short English stock-photo query for a remedy.
func DeriveImageQuery(remedy entities.Remedy) string {
	var terms []string

	terms = appendIngredients(terms, remedy.Name)
	if len(terms) < maxQueryTerms {
		terms = appendIngredients(terms, remedy.Description)
	}

	if len(terms) == 0 {
		symptom := strings.ToLower(remedy.Symptom)
		for _, hint := range symptomHints {
			if containsAny(symptom, hint.terms) {
				terms = append(terms, hint.query)
				break
			}
		}
	}

	switch len(terms) {
	case 0:
		terms = []string{"medicinal plant", "natural remedy"}
	case 1:
		if !describesPlant(terms[0]) {
			terms = append(terms, "plant")
		}
	}

	if len(terms) > maxQueryTerms {
		terms = terms[:maxQueryTerms]
	}
	return strings.Join(terms, " ")
}

// appendIngredients adds lexicon matches on whole words of text, skipping
// English terms already present.
func appendIngredients(terms []string, text string) []string {
	words := wordSet(text)
	for _, entry := range ingredientLexicon {
		if len(terms) >= maxQueryTerms {
			break
		}
		if !words[entry.term] || contains(terms, entry.english) {
			continue
		}
		terms = append(terms, entry.english)
	}
	return terms
}

func wordSet(text string) map[string]bool {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r)
	})
	set := make(map[string]bool, len(fields))
	for _, f := range fields {
		set[f] = true
	}
	return set
}

func describesPlant(term string) bool {
	return containsAny(term, []string{"plant", "herb", "remedy", "tea", "fruit", "leaf", "leaves"})
}

func containsAny(text string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(text, n) {
			return true
		}
	}
	return false
}

func contains(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
