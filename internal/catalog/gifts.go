// Package catalog holds the site's fixed content: the gift-contribution
// tiers and the curated accommodation list. Data is returned by copy so
// callers can merge into it freely.
package catalog

import "wedding_site/internal/domain"

var gifts = []domain.GiftOption{
	{
		ID:          1,
		Title:       "Gelatos na Ponte Vecchio",
		Description: "Um momento doce e refrescante em Florença.",
		Amount:      50,
		ImageURL:    "https://plus.unsplash.com/premium_photo-1661963277538?auto=format&fit=crop&w=1200",
		Gallery: []domain.GallerySlide{
			{
				ImageURL: "https://images.unsplash.com/photo-1722141230743?auto=format&fit=crop&w=1200",
				Caption:  "Em uma das nossas tardes em Florença, vamos experimentar um clássico italiano: o Gelato!",
				Emoji:    "🤤",
			},
			{
				ImageURL: "https://plus.unsplash.com/premium_photo-1683147864503?auto=format&fit=crop&w=1200",
				Caption:  "Vamos até uma boa gelataria e pedir um para cada. Sua contribuição faz parte desse momento doce! <3",
				Emoji:    "🍦",
			},
			{
				ImageURL: "https://images.unsplash.com/photo-1543429257?auto=format&fit=crop&w=1200",
				Caption:  "Ficaremos até o pôr do sol saboreando essa experiência sem pressa.",
				Emoji:    "❤️",
			},
		},
	},
	{
		ID:          2,
		Title:       "Entrada para o Jardim de Boboli",
		Description: "Um passeio romântico pelos jardins renascentistas repletos de esculturas e fontes.",
		Amount:      100,
		ImageURL:    "https://images.unsplash.com/photo-1713183236640?auto=format&fit=crop&w=1200",
		Gallery: []domain.GallerySlide{
			{
				ImageURL: "https://images.unsplash.com/photo-1683634059556?auto=format&fit=crop&w=1200",
				Caption:  "Vamos subir as colinas atrás do Palácio Pitti para conhecer os jardins mais famosos da cidade.",
				Emoji:    "🏛️",
			},
			{
				ImageURL: "https://images.unsplash.com/photo-1587250692642?auto=format&fit=crop&w=1200",
				Caption:  "Vamos caminhar entre as estátuas e labirintos. Sua contribuição nos ajuda a conhecer esse refúgio verde.",
				Emoji:    "🌳",
			},
			{
				ImageURL: "https://images.unsplash.com/photo-1527353574138?auto=format&fit=crop&w=1200",
				Caption:  "Depois é só relaxar na grama e curtir o silêncio e a paz desse lugar histórico.",
				Emoji:    "💕",
			},
		},
	},
	{
		ID:          3,
		Title:       "Jantar em uma Trattoria Típica",
		Description: "Uma autêntica experiência gastronômica toscana com massas frescas e muito carinho.",
		Amount:      250,
		ImageURL:    "https://images.unsplash.com/photo-1625300064269?auto=format&fit=crop&w=1200",
		Gallery: []domain.GallerySlide{
			{
				ImageURL: "https://images.unsplash.com/photo-1497397854478?auto=format&fit=crop&w=1200",
				Caption:  "Quando a noite cair, vamos procurar uma daquelas portinhas charmosas escondidas nas ruelas.",
				Emoji:    "🚪",
			},
			{
				ImageURL: "https://images.unsplash.com/photo-1574969903809?auto=format&fit=crop&w=1200",
				Caption:  "Hora de pedir uma massa fresca e um vinho. Sua contribuição faz parte desse banquete toscano!",
				Emoji:    "🍝",
			},
			{
				ImageURL: "https://images.unsplash.com/photo-1642487593848?auto=format&fit=crop&w=1200",
				Caption:  "Sairemos de lá felizes e prontos para uma caminhada romântica sob a luz da lua.",
				Emoji:    "🌙",
			},
		},
	},
	{
		ID:          4,
		Title:       "Passeio de Barco no Rio Arno",
		Description: "Ver o pôr do sol sob as pontes de Florença navegando suavemente pelo rio.",
		Amount:      500,
		ImageURL:    "https://images.unsplash.com/photo-1566209836870?auto=format&fit=crop&w=1200",
		Gallery: []domain.GallerySlide{
			{
				ImageURL: "https://images.unsplash.com/photo-1639735494408?auto=format&fit=crop&w=1200",
				Caption:  "Vamos descer até as margens do rio para encontrar o barco tradicional que faz o passeio pelas pontes.",
				Emoji:    "🌊",
			},
			{
				ImageURL: "https://images.unsplash.com/photo-1639735496037?auto=format&fit=crop&w=1200",
				Caption:  "Navegaremos devagar passando por baixo da Ponte Vecchio. Sua contribuição torna esse passeio possível!",
				Emoji:    "🚣",
			},
			{
				ImageURL: "https://images.unsplash.com/photo-1633529974768?auto=format&fit=crop&w=1200",
				Caption:  "A vista da cidade das águas é outra coisa, um momento perfeito pra guardar na memória.",
				Emoji:    "🥰",
			},
		},
	},
	{
		ID:          5,
		Title:       "Tour de Vinhos em Chianti",
		Description: "Um dia inteiro explorando as colinas da Toscana e degustando os melhores vinhos da região.",
		Amount:      1000,
		ImageURL:    "https://images.unsplash.com/photo-1760372055346?auto=format&fit=crop&w=1200",
		Gallery: []domain.GallerySlide{
			{
				ImageURL: "https://images.unsplash.com/photo-1715270760965?auto=format&fit=crop&w=1200",
				Caption:  "Pegaremos a estrada rumo às colinas carregadas de parreiras que ficam logo ali ao lado de Florença.",
				Emoji:    "🍇",
			},
			{
				ImageURL: "https://images.unsplash.com/photo-1506377247377?auto=format&fit=crop&w=1200",
				Caption:  "Vamos visitar uma vinícola familiar. Sua contribuição faz parte dessa experiência com degustação e queijos locais!",
				Emoji:    "🍷",
			},
			{
				ImageURL: "https://images.unsplash.com/photo-1732294888497?auto=format&fit=crop&w=1200",
				Caption:  "Voltaremos com o coração quente e muita história pra contar sobre os vinhos da região.",
				Emoji:    "🥰",
			},
		},
	},
	{
		ID:          6,
		Title:       "Noite de Gala com Vista para o Duomo",
		Description: "Uma estadia inesquecível em um hotel boutique com a cúpula de Brunelleschi em nossa janela.",
		Amount:      2000,
		ImageURL:    "https://plus.unsplash.com/premium_photo-1661962743075?auto=format&fit=crop&w=1200",
		Gallery: []domain.GallerySlide{
			{
				ImageURL: "https://images.unsplash.com/photo-1675409145919?auto=format&fit=crop&w=1200",
				Caption:  "Depois de tanto bater perna, tudo o que queremos é chegar num lugar confortável e abrir a cortina.",
				Emoji:    "😌",
			},
			{
				ImageURL: "https://images.unsplash.com/photo-1609534104699?auto=format&fit=crop&w=1200",
				Caption:  "Imagine abrir a janela e dar de cara com o Duomo. Sua contribuição nos ajuda a realizar essa estadia especial!",
				Emoji:    "🏨",
			},
			{
				ImageURL: "https://images.unsplash.com/photo-1731844737686?auto=format&fit=crop&w=1200",
				Caption:  "Nada supera o sentimento de acordar e dormir olhando para o cartão postal de Florença.",
				Emoji:    "❤️",
			},
		},
	},
}

// Gifts returns the contribution tiers, ordered by amount.
func Gifts() []domain.GiftOption {
	out := make([]domain.GiftOption, len(gifts))
	copy(out, gifts)
	return out
}

// GiftByID returns the tier with the given id.
func GiftByID(id int) (domain.GiftOption, bool) {
	for _, g := range gifts {
		if g.ID == id {
			return g, true
		}
	}
	return domain.GiftOption{}, false
}
