package source

import "github.com/samasante/backend/internal/domain/entities"

// seedCatalog is the built-in remedy catalog. Symptom tags are lower-case
// French and Wolof terms as users type them.
var seedCatalog = []entities.CatalogRemedy{
	{
		Name:     "Tisane de kinkeliba",
		Symptoms: []string{"fièvre", "seuf", "fatigue", "digestion", "paludisme"},
		Descriptions: map[string]string{
			entities.LangFrench:  "Faire bouillir une poignée de feuilles de kinkeliba dans un litre d'eau pendant 10 minutes. Boire 2 à 3 tasses par jour, tiède.",
			entities.LangEnglish: "Boil a handful of kinkeliba leaves in a litre of water for 10 minutes. Drink 2 to 3 warm cups a day.",
			entities.LangWolof:   "Togglal ay xob kinkeliba ci benn litar ndox diirub 10 minit. Naanal 2 ba 3 kaas ci bés bi.",
		},
		Popular: true,
	},
	{
		Name:     "Miel et citron chaud",
		Symptoms: []string{"toux", "soj", "mal de gorge", "gorge", "baat", "rhume"},
		Descriptions: map[string]string{
			entities.LangFrench:  "Mélanger une cuillère de miel et le jus d'un demi-citron dans une tasse d'eau chaude. Boire lentement matin et soir.",
			entities.LangEnglish: "Mix a spoon of honey and the juice of half a lemon in a cup of hot water. Sip slowly morning and evening.",
			entities.LangWolof:   "Boolel benn kuddu lem ak ndoxu limon ci kaasu ndox bu tang. Naanal ndank ci suba ak ci ngoon.",
		},
		Popular: true,
	},
	{
		Name:     "Infusion de gingembre",
		Symptoms: []string{"toux", "soj", "rhume", "nausée", "digestion"},
		Descriptions: map[string]string{
			entities.LangFrench:  "Râper un morceau de gingembre frais, laisser infuser 10 minutes dans l'eau chaude, ajouter du miel. Jusqu'à 3 tasses par jour.",
			entities.LangEnglish: "Grate a piece of fresh ginger, steep for 10 minutes in hot water and add honey. Up to 3 cups a day.",
			entities.LangWolof:   "Wàññil jinjeer bu bees, bàyyi ko 10 minit ci ndox bu tang, yokk ci lem. Ba 3 kaas ci bés bi.",
		},
		Popular: true,
	},
	{
		Name:     "Jus de bissap",
		Symptoms: []string{"tension", "fatigue", "chaleur"},
		Descriptions: map[string]string{
			entities.LangFrench:  "Infuser les fleurs d'hibiscus séchées dans l'eau froide une nuit, filtrer et sucrer légèrement. Boire frais, avec modération.",
			entities.LangEnglish: "Steep dried hibiscus flowers in cold water overnight, strain and sweeten lightly. Drink chilled, in moderation.",
			entities.LangWolof:   "Bàyyil bissap bu wow ci ndox bu sedd benn guddi, seggal ko te sukkar tuuti. Naanal ko mu sedd.",
		},
	},
	{
		Name:     "Poudre de moringa (nebeday)",
		Symptoms: []string{"fatigue", "anémie", "faiblesse"},
		Descriptions: map[string]string{
			entities.LangFrench:  "Ajouter une cuillère à café de poudre de feuilles de nebeday à la bouillie ou à la sauce une fois par jour.",
			entities.LangEnglish: "Add a teaspoon of moringa leaf powder to porridge or sauce once a day.",
			entities.LangWolof:   "Yokkal benn kuddu xob nebeday bu wow ci sanxal walla ci soos bi benn yoon ci bés bi.",
		},
		Popular: true,
	},
	{
		Name:     "Jus de pain de singe (buy)",
		Symptoms: []string{"diarrhée", "digestion", "fatigue"},
		Descriptions: map[string]string{
			entities.LangFrench:  "Délayer la pulpe de fruit de baobab dans de l'eau potable, filtrer. Un verre deux fois par jour.",
			entities.LangEnglish: "Dissolve baobab fruit pulp in clean water and strain. One glass twice a day.",
			entities.LangWolof:   "Jaxasal buy ak ndox bu set, seggal ko. Benn kaas ñaari yoon ci bés bi.",
		},
	},
	{
		Name:     "Tisane de citronnelle",
		Symptoms: []string{"fièvre", "seuf", "stress", "mal de tête", "bop"},
		Descriptions: map[string]string{
			entities.LangFrench:  "Faire infuser quelques tiges de citronnelle 10 minutes dans l'eau chaude. Boire le soir.",
			entities.LangEnglish: "Steep a few lemongrass stalks in hot water for 10 minutes. Drink in the evening.",
			entities.LangWolof:   "Bàyyil ay bant citronnelle 10 minit ci ndox bu tang. Naanal ko ci ngoon.",
		},
	},
	{
		Name:     "Décoction de feuilles de neem",
		Symptoms: []string{"fièvre", "seuf", "peau", "yaram", "boutons"},
		Descriptions: map[string]string{
			entities.LangFrench:  "Faire bouillir quelques feuilles de neem, laisser refroidir et utiliser en lavage sur la peau. Ne pas boire en grande quantité.",
			entities.LangEnglish: "Boil a few neem leaves, let cool and use as a skin wash. Do not drink in large amounts.",
			entities.LangWolof:   "Togglal ay xob neem, bàyyi mu sedd, sangu ko sa der. Bul ko naan lu bare.",
		},
	},
	{
		Name:     "Gel d'aloe vera",
		Symptoms: []string{"peau", "yaram", "brûlure", "boutons"},
		Descriptions: map[string]string{
			entities.LangFrench:  "Ouvrir une feuille d'aloe vera et appliquer le gel frais sur la zone irritée deux fois par jour.",
			entities.LangEnglish: "Open an aloe vera leaf and apply the fresh gel to the irritated area twice a day.",
			entities.LangWolof:   "Ubbil xob aloe vera bi, defal gel bi ci fi la metti ñaari yoon ci bés bi.",
		},
	},
	{
		Name:     "Beurre de karité",
		Symptoms: []string{"peau", "yaram", "sécheresse"},
		Descriptions: map[string]string{
			entities.LangFrench:  "Masser une petite quantité de beurre de karité pur sur la peau sèche après la toilette.",
			entities.LangEnglish: "Massage a small amount of pure shea butter into dry skin after washing.",
			entities.LangWolof:   "Defal tuuti karité ci sa der bu wow bu nga sangoo ba noppi.",
		},
	},
	{
		Name:     "Thé à la menthe (nana)",
		Symptoms: []string{"digestion", "mal de tête", "bop", "stress", "nausée"},
		Descriptions: map[string]string{
			entities.LangFrench:  "Infuser des feuilles de nana fraîches dans l'eau chaude 5 minutes. Boire après le repas.",
			entities.LangEnglish: "Steep fresh mint leaves in hot water for 5 minutes. Drink after meals.",
			entities.LangWolof:   "Bàyyil xob nana yu bees 5 minit ci ndox bu tang. Naanal ko su nga lekkee ba noppi.",
		},
		Popular: true,
	},
	{
		Name:     "Clou de girofle",
		Symptoms: []string{"mal de dents", "dents", "gencives"},
		Descriptions: map[string]string{
			entities.LangFrench:  "Placer un clou de girofle contre la dent douloureuse quelques minutes. Consulter un dentiste si la douleur persiste.",
			entities.LangEnglish: "Hold a clove against the painful tooth for a few minutes. See a dentist if the pain persists.",
			entities.LangWolof:   "Tegal benn girofle ci bëñ bi di metti ay minit. Dem ci dentist bu metit bi desee.",
		},
	},
	{
		Name:     "Infusion de thym",
		Symptoms: []string{"toux", "soj", "rhume", "gorge"},
		Descriptions: map[string]string{
			entities.LangFrench:  "Infuser une cuillère de thym séché 10 minutes dans l'eau chaude, ajouter du miel. Deux tasses par jour.",
			entities.LangEnglish: "Steep a spoon of dried thyme in hot water for 10 minutes and add honey. Two cups a day.",
			entities.LangWolof:   "Bàyyil benn kuddu thym 10 minit ci ndox bu tang, yokk ci lem. Ñaari kaas ci bés bi.",
		},
	},
	{
		Name:     "Camomille du soir",
		Symptoms: []string{"sommeil", "nelaw", "stress", "insomnie"},
		Descriptions: map[string]string{
			entities.LangFrench:  "Une tasse d'infusion de camomille 30 minutes avant le coucher.",
			entities.LangEnglish: "One cup of chamomile infusion 30 minutes before bed.",
			entities.LangWolof:   "Benn kaas camomille 30 minit balaa ngay nelaw.",
		},
	},
	{
		Name:     "Eau de riz salée",
		Symptoms: []string{"diarrhée", "déshydratation"},
		Descriptions: map[string]string{
			entities.LangFrench:  "Faire cuire du riz dans beaucoup d'eau, filtrer et ajouter une pincée de sel. Boire par petites gorgées. Consulter si la diarrhée dure plus de deux jours.",
			entities.LangEnglish: "Cook rice in plenty of water, strain and add a pinch of salt. Sip slowly. See a health worker if diarrhoea lasts more than two days.",
			entities.LangWolof:   "Togglal ceeb ak ndox bu bare, seggal ko te yokk tuuti xorom. Naanal ndank. Dem ci poste de santé bu biir buy daw ëpp ñaari fan.",
		},
	},
	{
		Name:     "Feuilles de corossol",
		Symptoms: []string{"sommeil", "nelaw", "stress"},
		Descriptions: map[string]string{
			entities.LangFrench:  "Infuser trois feuilles de corossol dans l'eau chaude et boire le soir.",
			entities.LangEnglish: "Steep three soursop leaves in hot water and drink in the evening.",
			entities.LangWolof:   "Bàyyil ñetti xob corossol ci ndox bu tang te naan ko ci ngoon.",
		},
	},
}

// SeedCatalog returns a copy of the built-in catalog, used to seed the
// remedies table.
func SeedCatalog() []entities.CatalogRemedy {
	out := make([]entities.CatalogRemedy, len(seedCatalog))
	copy(out, seedCatalog)
	return out
}
