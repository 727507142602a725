package catalog

import "github.com/jsamuelsen/rashi-tree-guide/internal/domain"

// Image ids on images.unsplash.com shared by catalog entries.
const (
	imgForestPath = "1518495973542-4542c06a5843"
	imgMeadow     = "1502082553048-f009c37129b9"
	imgDesert     = "1509316975850-ff9c5deb0cd9"
	imgCanopy     = "1542601906990-b4d3fb778b09"
	imgSunlit     = "1513836279014-a89f7a76ae86"
)

func unsplash(id string) string {
	return "https://images.unsplash.com/photo-" + id + "?w=400&h=300&fit=crop"
}

func shippedRashis() []domain.Rashi {
	return []domain.Rashi{
		{Key: domain.Mesha, Label: "Mesh", Vedic: "Mesh", NativeLabel: "मेष", EnglishName: "Aries", Symbol: "♈", Element: domain.ElementFire, RulingPlanet: "Mars", Color: "hsl(0, 70%, 50%)", Image: unsplash(imgForestPath)},
		{Key: domain.Vrishabha, Label: "Vrishabh", Vedic: "Vrishabh", NativeLabel: "वृषभ", EnglishName: "Taurus", Symbol: "♉", Element: domain.ElementEarth, RulingPlanet: "Venus", Color: "hsl(120, 40%, 35%)", Image: unsplash(imgMeadow)},
		{Key: domain.Mithuna, Label: "Mithun", Vedic: "Mithun", NativeLabel: "मिथुन", EnglishName: "Gemini", Symbol: "♊", Element: domain.ElementAir, RulingPlanet: "Mercury", Color: "hsl(45, 80%, 50%)", Image: unsplash(imgDesert)},
		{Key: domain.Karka, Label: "Kark", Vedic: "Karka", NativeLabel: "कर्क", EnglishName: "Cancer", Symbol: "♋", Element: domain.ElementWater, RulingPlanet: "Moon", Color: "hsl(200, 60%, 55%)", Image: unsplash(imgCanopy)},
		{Key: domain.Simha, Label: "Simha", Vedic: "Simha", NativeLabel: "सिंह", EnglishName: "Leo", Symbol: "♌", Element: domain.ElementFire, RulingPlanet: "Sun", Color: "hsl(35, 90%, 55%)", Image: unsplash(imgSunlit)},
		{Key: domain.Kanya, Label: "Kanya", Vedic: "Kanya", NativeLabel: "कन्या", EnglishName: "Virgo", Symbol: "♍", Element: domain.ElementEarth, RulingPlanet: "Mercury", Color: "hsl(80, 45%, 45%)", Image: unsplash(imgForestPath)},
		{Key: domain.Tula, Label: "Tula", Vedic: "Tula", NativeLabel: "तुला", EnglishName: "Libra", Symbol: "♎", Element: domain.ElementAir, RulingPlanet: "Venus", Color: "hsl(330, 50%, 60%)", Image: unsplash(imgMeadow)},
		{Key: domain.Vrishchika, Label: "Vrishchik", Vedic: "Vrishchik", NativeLabel: "वृश्चिक", EnglishName: "Scorpio", Symbol: "♏", Element: domain.ElementWater, RulingPlanet: "Mars", Color: "hsl(350, 60%, 40%)", Image: unsplash(imgDesert)},
		{Key: domain.Dhanu, Label: "Dhanu", Vedic: "Dhanu", NativeLabel: "धनु", EnglishName: "Sagittarius", Symbol: "♐", Element: domain.ElementFire, RulingPlanet: "Jupiter", Color: "hsl(270, 50%, 55%)", Image: unsplash(imgCanopy)},
		{Key: domain.Makara, Label: "Makar", Vedic: "Makar", NativeLabel: "मकर", EnglishName: "Capricorn", Symbol: "♑", Element: domain.ElementEarth, RulingPlanet: "Saturn", Color: "hsl(25, 35%, 35%)", Image: unsplash(imgSunlit)},
		{Key: domain.Kumbha, Label: "Kumbh", Vedic: "Kumbh", NativeLabel: "कुंभ", EnglishName: "Aquarius", Symbol: "♒", Element: domain.ElementAir, RulingPlanet: "Saturn", Color: "hsl(195, 70%, 50%)", Image: unsplash(imgForestPath)},
		{Key: domain.Meena, Label: "Meen", Vedic: "Meen", NativeLabel: "मीन", EnglishName: "Pisces", Symbol: "♓", Element: domain.ElementWater, RulingPlanet: "Jupiter", Color: "hsl(180, 50%, 45%)", Image: unsplash(imgMeadow)},
	}
}

// shippedTrees is the Gujarat native and naturalised tree database.
func shippedTrees() []domain.Tree {
	return []domain.Tree{
		// Mars, Mesh.
		{
			ID: "khair", Name: "Khair", ScientificName: "Acacia catechu",
			Description: "A thorny deciduous tree known for producing catechu (katha). Symbolizes strength and resilience, perfect for the warrior spirit of Aries.",
			CareTips:    "Drought-tolerant. Full sun. Grows well in dry, rocky soils.",
			IdealRegion: "Gujarat dry deciduous forests", Image: unsplash(imgSunlit),
		},
		{
			ID: "palash", Name: "Palash", ScientificName: "Butea monosperma",
			Description: "The Flame of the Forest with brilliant orange-red flowers. Its fiery blooms represent the passionate Mars energy.",
			CareTips:    "Full sun. Drought-tolerant. Thrives in poor, dry soil.",
			IdealRegion: "Tropical dry deciduous forests", Image: unsplash(imgMeadow),
		},
		{
			ID: "khejri", Name: "Khejri/Shami", ScientificName: "Prosopis cineraria",
			Description: "The sacred Shami tree worshipped during Dussehra. Known as the 'King of the Desert', embodying courage.",
			CareTips:    "Extremely drought-resistant. Full sun. Thrives in arid conditions.",
			IdealRegion: "Arid regions of Gujarat and Rajasthan", Image: unsplash(imgCanopy),
		},
		{
			ID: "gorad_babool", Name: "Gorad Babool", ScientificName: "Acacia nilotica",
			Description: "A hardy acacia tree with medicinal bark. Represents protection and strength in harsh conditions.",
			CareTips:    "Drought-tolerant. Full sun. Grows in saline and alkaline soils.",
			IdealRegion: "Arid and semi-arid Gujarat", Image: unsplash(imgForestPath),
		},
		{
			ID: "bordi", Name: "Bordi", ScientificName: "Ziziphus mauritiana",
			Description: "The Indian Jujube, known for its sweet fruits. A resilient tree symbolizing prosperity and sustenance.",
			CareTips:    "Very drought-tolerant. Full sun. Minimal maintenance once established.",
			IdealRegion: "Throughout Gujarat", Image: unsplash(imgDesert),
		},

		// Venus, Vrishabh.
		{
			ID: "gular", Name: "Gular", ScientificName: "Ficus racemosa",
			Description: "The cluster fig tree, sacred in Hindu tradition. Represents abundance and fertility - perfect for Venus-ruled Taurus.",
			CareTips:    "Moist soil preferred. Full sun to partial shade. Regular watering.",
			IdealRegion: "Along water bodies in Gujarat", Image: unsplash(imgForestPath),
		},
		{
			ID: "jamun", Name: "Jamun", ScientificName: "Syzygium cumini",
			Description: "The Java Plum with purple-black fruits. A tree of prosperity and health, aligned with Taurus' love for earthly pleasures.",
			CareTips:    "Full sun. Regular watering. Tolerates waterlogging.",
			IdealRegion: "Tropical Gujarat", Image: unsplash(imgSunlit),
		},
		{
			ID: "amla", Name: "Amla", ScientificName: "Phyllanthus emblica",
			Description: "The Indian Gooseberry, richest natural source of Vitamin C. Sacred tree representing health and beauty.",
			CareTips:    "Full sun. Drought-tolerant once established. Minimal maintenance.",
			IdealRegion: "Tropical and subtropical Gujarat", Image: unsplash(imgMeadow),
		},
		{
			ID: "mango", Name: "Mango", ScientificName: "Mangifera indica",
			Description: "The King of Fruits! Gujarat's Kesar mangoes are world-famous. Represents sweetness and luxury.",
			CareTips:    "Full sun essential. Deep watering during dry spells. Protect from frost when young.",
			IdealRegion: "Tropical lowlands, especially Junagadh and Amreli", Image: unsplash(imgDesert),
		},
		{
			ID: "banyan", Name: "Banyan", ScientificName: "Ficus benghalensis",
			Description: "The majestic national tree of India. Its vast canopy represents protection and immortality.",
			CareTips:    "Requires full sun and plenty of space. Water deeply but infrequently.",
			IdealRegion: "Throughout Gujarat", Image: unsplash(imgSunlit),
		},

		// Mercury, Mithun.
		{
			ID: "neem", Name: "Neem", ScientificName: "Azadirachta indica",
			Description: "The divine healer with incredible medicinal properties. Mercury's tree of wisdom and communication.",
			CareTips:    "Drought-tolerant once established. Full sun. Can grow in poor soil.",
			IdealRegion: "Throughout Gujarat", Image: unsplash(imgCanopy),
		},
		{
			ID: "bamboo", Name: "Bamboo", ScientificName: "Bambusa spp.",
			Description: "The fastest-growing plant on Earth. Symbol of flexibility and rapid growth - matching Gemini's adaptability.",
			CareTips:    "Moist, well-drained soil. Full sun to partial shade. Can spread aggressively.",
			IdealRegion: "Tropical and temperate zones", Image: unsplash(imgForestPath),
		},
		{
			ID: "bael", Name: "Bael", ScientificName: "Aegle marmelos",
			Description: "Sacred to Lord Shiva. Its trifoliate leaves represent the three aspects of consciousness.",
			CareTips:    "Drought-tolerant. Full sun. Can grow in poor, rocky soil.",
			IdealRegion: "Dry forests of Gujarat", Image: unsplash(imgMeadow),
		},
		{
			ID: "karanj", Name: "Karanj", ScientificName: "Pongamia pinnata",
			Description: "The Indian Beech, known for its oil-rich seeds. Represents knowledge and utility.",
			CareTips:    "Very adaptable. Tolerates drought and saline conditions. Full sun.",
			IdealRegion: "Coastal and tropical Gujarat", Image: unsplash(imgDesert),
		},
		{
			ID: "desi_babool", Name: "Desi Babool", ScientificName: "Vachellia nilotica",
			Description: "A versatile acacia species with multiple uses. Symbolizes practical wisdom.",
			CareTips:    "Drought-tolerant. Full sun. Grows in various soil types.",
			IdealRegion: "Arid regions of Gujarat", Image: unsplash(imgSunlit),
		},

		// Moon, Kark.
		{
			ID: "kadamba", Name: "Kadamba", ScientificName: "Neolamarckia cadamba",
			Description: "Associated with Lord Krishna and monsoons. Its fragrant flowers bloom during rains, connecting to Moon's watery nature.",
			CareTips:    "Moist soil. Full sun. Fast-growing in suitable conditions.",
			IdealRegion: "Tropical moist forests", Image: unsplash(imgCanopy),
		},
		{
			ID: "arjun", Name: "Arjun", ScientificName: "Terminalia arjuna",
			Description: "Named after the legendary warrior. Its bark is a renowned heart tonic - nurturing like Cancer.",
			CareTips:    "Grows near water bodies. Full sun. Tolerates flooding.",
			IdealRegion: "River banks across Gujarat", Image: unsplash(imgForestPath),
		},
		{
			ID: "coconut", Name: "Coconut", ScientificName: "Cocos nucifera",
			Description: "The Tree of Life! Provides food, water, oil - nurturing in every way, like Moon-ruled Cancer.",
			CareTips:    "Full sun and sandy soil. Regular watering. Tolerates salt spray.",
			IdealRegion: "Coastal Gujarat", Image: unsplash(imgMeadow),
		},
		{
			ID: "tad_palm", Name: "Tad Palm", ScientificName: "Borassus flabellifer",
			Description: "The Palmyra Palm, providing neera and toddy. A nurturing tree for communities.",
			CareTips:    "Full sun. Drought-tolerant once established. Sandy soil preferred.",
			IdealRegion: "Coastal and semi-arid Gujarat", Image: unsplash(imgDesert),
		},
		{
			ID: "banana", Name: "Banana", ScientificName: "Musa spp.",
			Description: "Sacred in Hindu rituals. Every part is useful - the ultimate nurturing plant.",
			CareTips:    "Moist, rich soil. Full sun. Regular feeding and watering.",
			IdealRegion: "Throughout Gujarat", Image: unsplash(imgSunlit),
		},

		// Sun, Simha.
		{
			ID: "peepal", Name: "Peepal", ScientificName: "Ficus religiosa",
			Description: "The sacred fig under which Buddha attained enlightenment. The royal tree of spiritual awakening.",
			CareTips:    "Full sun to partial shade. Regular watering when young. Extremely long-lived.",
			IdealRegion: "Throughout Gujarat", Image: unsplash(imgCanopy),
		},
		{
			ID: "arka_aak", Name: "Arka/Aak", ScientificName: "Calotropis gigantea",
			Description: "The Crown Flower, sacred to Lord Shiva and Sun God. Its regal purple flowers suit Leo's majesty.",
			CareTips:    "Extremely drought-tolerant. Full sun. Grows in poor soil.",
			IdealRegion: "Arid regions of Gujarat", Image: unsplash(imgForestPath),
		},
		{
			ID: "rudraksha", Name: "Rudraksha", ScientificName: "Elaeocarpus ganitrus",
			Description: "The sacred bead tree. Its seeds are worn for spiritual power and protection.",
			CareTips:    "Moist, well-drained soil. Partial shade. Humid conditions preferred.",
			IdealRegion: "Himalayan foothills (can be grown in Gujarat gardens)", Image: unsplash(imgMeadow),
		},

		// Mercury, Kanya.
		{
			ID: "harad", Name: "Harad", ScientificName: "Terminalia chebula",
			Description: "The 'King of Medicines' in Ayurveda. Perfect for detail-oriented, health-conscious Virgo.",
			CareTips:    "Moist soil. Full sun to partial shade. Moderate watering.",
			IdealRegion: "Deciduous forests of Gujarat", Image: unsplash(imgDesert),
		},
		{
			ID: "kachnar", Name: "Kachnar", ScientificName: "Bauhinia variegata",
			Description: "The Orchid Tree with beautiful flowers. Represents purity and precision.",
			CareTips:    "Full sun. Moderate watering. Prune after flowering.",
			IdealRegion: "Throughout Gujarat", Image: unsplash(imgSunlit),
		},

		// Venus, Tula.
		{
			ID: "ashoka", Name: "Ashoka", ScientificName: "Saraca asoca",
			Description: "The tree of love and beauty. Its name means 'without sorrow' - balancing like Libra.",
			CareTips:    "Prefers partial shade. Keep soil consistently moist. Slow-growing but worth the wait.",
			IdealRegion: "Moist forests of Gujarat", Image: unsplash(imgCanopy),
		},
		{
			ID: "champa", Name: "Champa", ScientificName: "Plumeria rubra",
			Description: "Frangipani with intensely fragrant flowers. Symbol of devotion and beauty.",
			CareTips:    "Full sun. Allow soil to dry between watering. Protect from frost.",
			IdealRegion: "Tropical and subtropical Gujarat", Image: unsplash(imgForestPath),
		},
		{
			ID: "parijat", Name: "Parijat", ScientificName: "Nyctanthes arbor-tristis",
			Description: "Night Jasmine with heavenly fragrance. Its delicate beauty suits Venus-ruled Libra.",
			CareTips:    "Partial shade. Regular watering. Prune after flowering.",
			IdealRegion: "Throughout Gujarat", Image: unsplash(imgMeadow),
		},

		// Mars, Vrishchik.
		{
			ID: "ber_bordi", Name: "Ber/Bordi", ScientificName: "Ziziphus mauritiana",
			Description: "The thorny Jujube tree. Its protective thorns match Scorpio's defensive nature.",
			CareTips:    "Very drought-tolerant. Full sun. Minimal maintenance.",
			IdealRegion: "Throughout Gujarat", Image: unsplash(imgDesert),
		},
		{
			ID: "nagkesar", Name: "Nagkesar", ScientificName: "Mesua ferrea",
			Description: "The Ceylon Ironwood with fragrant flowers. Represents transformation and depth.",
			CareTips:    "Partial shade. Moist, rich soil. Slow-growing.",
			IdealRegion: "Moist forests (can be grown in Gujarat gardens)", Image: unsplash(imgSunlit),
		},

		// Jupiter, Dhanu.
		{
			ID: "gular_dhanu", Name: "Gular", ScientificName: "Ficus racemosa",
			Description: "The sacred fig of abundance. Jupiter's expansive energy flows through this generous tree.",
			CareTips:    "Moist soil preferred. Full sun to partial shade. Regular watering.",
			IdealRegion: "Along water bodies in Gujarat", Image: unsplash(imgCanopy),
		},

		// Saturn, Makar.
		{
			ID: "tamarind", Name: "Tamarind", ScientificName: "Tamarindus indica",
			Description: "The ancient tamarind, slow-growing but long-lived. Saturn's patience in tree form.",
			CareTips:    "Drought-tolerant. Full sun. Minimal care once established.",
			IdealRegion: "Throughout Gujarat", Image: unsplash(imgForestPath),
		},
		{
			ID: "vilayati_babool", Name: "Vilayati Babool", ScientificName: "Prosopis juliflora",
			Description: "The hardy mesquite tree. Represents discipline and survival against odds.",
			CareTips:    "Extremely drought-tolerant. Full sun. Grows in poorest soils.",
			IdealRegion: "Arid Gujarat", Image: unsplash(imgMeadow),
		},

		// Saturn, Kumbh.
		{
			ID: "fig_group", Name: "Fig Group", ScientificName: "Ficus spp.",
			Description: "The community of fig trees. Aquarius' humanitarian nature reflected in trees that feed many.",
			CareTips:    "Varies by species. Generally adaptable and easy to grow.",
			IdealRegion: "Throughout Gujarat", Image: unsplash(imgDesert),
		},

		// Jupiter, Meen.
		{
			ID: "kadamba_meen", Name: "Kadamba", ScientificName: "Neolamarckia cadamba",
			Description: "The monsoon tree with ethereal fragrance. Jupiter's spiritual wisdom for dreamy Pisces.",
			CareTips:    "Moist soil. Full sun. Fast-growing in suitable conditions.",
			IdealRegion: "Tropical moist forests", Image: unsplash(imgSunlit),
		},
	}
}

// shippedMappings follows the Gujarat rashi-tree reference chart.
func shippedMappings() []domain.RashiTreeMapping {
	return []domain.RashiTreeMapping{
		{Rashi: domain.Mesha, Primary: "khair", Alternates: []string{"palash", "khejri", "gorad_babool", "bordi"}, Graha: "Mars"},
		{Rashi: domain.Vrishabha, Primary: "gular", Alternates: []string{"jamun", "amla", "mango", "banyan"}, Graha: "Venus"},
		{Rashi: domain.Mithuna, Primary: "neem", Alternates: []string{"bamboo", "bael", "karanj", "desi_babool"}, Graha: "Mercury"},
		{Rashi: domain.Karka, Primary: "kadamba", Alternates: []string{"arjun", "coconut", "tad_palm", "banana"}, Graha: "Moon"},
		{Rashi: domain.Simha, Primary: "peepal", Alternates: []string{"banyan", "arka_aak", "rudraksha", "khejri"}, Graha: "Sun"},
		{Rashi: domain.Kanya, Primary: "neem", Alternates: []string{"bael", "karanj", "harad", "kachnar"}, Graha: "Mercury"},
		{Rashi: domain.Tula, Primary: "ashoka", Alternates: []string{"champa", "mango", "parijat", "kadamba"}, Graha: "Venus"},
		{Rashi: domain.Vrishchika, Primary: "khejri", Alternates: []string{"palash", "ber_bordi", "nagkesar", "kachnar"}, Graha: "Mars"},
		{Rashi: domain.Dhanu, Primary: "peepal", Alternates: []string{"banyan", "bael", "amla", "gular_dhanu"}, Graha: "Jupiter"},
		{Rashi: domain.Makara, Primary: "khejri", Alternates: []string{"gorad_babool", "tamarind", "ber_bordi", "vilayati_babool"}, Graha: "Saturn"},
		{Rashi: domain.Kumbha, Primary: "neem", Alternates: []string{"peepal", "arjun", "khejri", "banyan"}, Graha: "Saturn"},
		{Rashi: domain.Meena, Primary: "kadamba_meen", Alternates: []string{"peepal", "amla", "banana", "fig_group"}, Graha: "Jupiter"},
	}
}
