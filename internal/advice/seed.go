package advice

// seedEntries is the reference dataset: the 38 PlantVillage classes
// (26 diseases across 14 crops, plus 12 healthy classes).
var seedEntries = []Entry{
	// Apple (4)
	{
		Label:   "Apple___Apple_scab",
		Crop:    "Apple",
		Disease: "Apple scab",
		Advice: Advice{
			Explanation: "Fungal disease (Venturia inaequalis) that causes olive-green to black velvety spots on leaves and corky scabs on fruit. It spreads in cool, wet spring weather.",
			TreatmentSteps: []string{
				"Remove and destroy badly infected leaves and fruit.",
				"Spray a sulphur-based or copper fungicide at green-tip and repeat every 10 to 14 days during wet weather.",
				"Rake and compost or burn fallen leaves after harvest.",
			},
			PreventionTips: []string{
				"Prune to open the canopy so leaves dry quickly.",
				"Plant scab-resistant varieties when replanting.",
			},
			IsSafeOrganic: true,
		},
	},
	{
		Label:   "Apple___Black_rot",
		Crop:    "Apple",
		Disease: "Black rot",
		Advice: Advice{
			Explanation: "Fungal disease (Botryosphaeria obtusa) causing purple-edged leaf spots, cankers on branches and black, shrivelled fruit that stay on the tree.",
			TreatmentSteps: []string{
				"Cut out cankered branches 15 cm below the visible infection.",
				"Remove mummified fruit from the tree and the ground.",
				"Apply captan or a copper fungicide from bloom to harvest as per label.",
			},
			PreventionTips: []string{
				"Keep the orchard free of dead wood and old fruit.",
				"Avoid wounding bark during field work.",
			},
			IsSafeOrganic: false,
		},
	},
	{
		Label:   "Apple___Cedar_apple_rust",
		Crop:    "Apple",
		Disease: "Cedar apple rust",
		Advice: Advice{
			Explanation: "Rust fungus that alternates between juniper (cedar) trees and apple. It forms bright yellow-orange spots on the upper side of apple leaves.",
			TreatmentSteps: []string{
				"Spray a sulphur fungicide from pink bud stage until two weeks after petal fall.",
				"Remove heavily spotted leaves to reduce spore load.",
			},
			PreventionTips: []string{
				"Remove nearby juniper hosts where possible.",
				"Choose rust-resistant apple varieties.",
			},
			IsSafeOrganic: true,
		},
	},
	healthy("Apple___healthy", "Apple"),

	// Blueberry (1)
	healthy("Blueberry___healthy", "Blueberry"),

	// Cherry (2)
	{
		Label:   "Cherry_(including_sour)___Powdery_mildew",
		Crop:    "Cherry",
		Disease: "Powdery mildew",
		Advice: Advice{
			Explanation: "Fungal disease (Podosphaera clandestina) that covers young leaves and shoots with white powdery growth, causing curling and poor fruit quality.",
			TreatmentSteps: []string{
				"Spray wettable sulphur or potassium bicarbonate at first sign of white patches.",
				"Prune out infected shoot tips.",
				"Repeat sprays every 7 to 10 days while new growth is present.",
			},
			PreventionTips: []string{
				"Avoid excess nitrogen fertiliser that forces soft growth.",
				"Keep good air flow through the canopy.",
			},
			IsSafeOrganic: true,
		},
	},
	healthy("Cherry_(including_sour)___healthy", "Cherry"),

	// Corn (4)
	{
		Label:   "Corn_(maize)___Cercospora_leaf_spot Gray_leaf_spot",
		Crop:    "Corn",
		Disease: "Gray leaf spot",
		Advice: Advice{
			Explanation: "Fungal disease (Cercospora zeae-maydis) producing long, rectangular grey-tan lesions between leaf veins. Warm, humid weather and crop residue favour it.",
			TreatmentSteps: []string{
				"Apply a strobilurin or triazole fungicide at tasseling if lesions reach the ear leaf.",
				"Scout lower leaves weekly during humid spells.",
			},
			PreventionTips: []string{
				"Rotate with a non-cereal crop for at least one season.",
				"Plough under or remove infected residue.",
				"Use tolerant hybrids.",
			},
			IsSafeOrganic: false,
		},
	},
	{
		Label:   "Corn_(maize)___Common_rust_",
		Crop:    "Corn",
		Disease: "Common rust",
		Advice: Advice{
			Explanation: "Fungal disease (Puccinia sorghi) forming small cinnamon-brown pustules on both leaf surfaces. Spores are wind-borne and spread fast in cool, moist weather.",
			TreatmentSteps: []string{
				"Spray a triazole fungicide when pustules appear before tasseling.",
				"Repeat after 14 days if weather stays cool and wet.",
			},
			PreventionTips: []string{
				"Sow resistant hybrids.",
				"Plant early so the crop matures before rust builds up.",
			},
			IsSafeOrganic: false,
		},
	},
	{
		Label:   "Corn_(maize)___Northern_Leaf_Blight",
		Crop:    "Corn",
		Disease: "Northern leaf blight",
		Advice: Advice{
			Explanation: "Fungal disease (Exserohilum turcicum) causing long, cigar-shaped grey-green lesions that can kill whole leaves and reduce grain filling.",
			TreatmentSteps: []string{
				"Apply mancozeb or a triazole fungicide when lesions first appear on lower leaves.",
				"Repeat at 10 to 15 day intervals under humid conditions.",
			},
			PreventionTips: []string{
				"Rotate crops and bury residue after harvest.",
				"Use resistant hybrids.",
			},
			IsSafeOrganic: false,
		},
	},
	healthy("Corn_(maize)___healthy", "Corn"),

	// Grape (4)
	{
		Label:   "Grape___Black_rot",
		Crop:    "Grape",
		Disease: "Black rot",
		Advice: Advice{
			Explanation: "Fungal disease (Guignardia bidwellii) producing brown leaf spots with dark borders and turning berries into hard black mummies.",
			TreatmentSteps: []string{
				"Remove mummified berries and infected leaves.",
				"Spray mancozeb or a copper fungicide from bud break through fruit set.",
			},
			PreventionTips: []string{
				"Prune for open canopy and good sunlight.",
				"Clear all mummies from vines and ground before the season.",
			},
			IsSafeOrganic: false,
		},
	},
	{
		Label:   "Grape___Esca_(Black_Measles)",
		Crop:    "Grape",
		Disease: "Esca (black measles)",
		Advice: Advice{
			Explanation: "Wood-rotting fungal complex that causes tiger-stripe patterns on leaves, dark spots on berries and sudden dieback of vines.",
			TreatmentSteps: []string{
				"Cut out and burn dead or infected wood.",
				"Seal large pruning wounds with a wound paste.",
				"Mark affected vines and replace them if dieback continues.",
			},
			PreventionTips: []string{
				"Prune in dry weather and disinfect tools between vines.",
				"Avoid large pruning cuts on old wood.",
			},
			IsSafeOrganic: true,
		},
	},
	{
		Label:   "Grape___Leaf_blight_(Isariopsis_Leaf_Spot)",
		Crop:    "Grape",
		Disease: "Leaf blight (Isariopsis leaf spot)",
		Advice: Advice{
			Explanation: "Fungal disease causing irregular dark brown spots on leaves that merge and make leaves dry and drop early.",
			TreatmentSteps: []string{
				"Remove infected leaves.",
				"Spray copper oxychloride or Bordeaux mixture at 10 to 15 day intervals.",
			},
			PreventionTips: []string{
				"Avoid overhead irrigation.",
				"Keep the vineyard weed-free to lower humidity.",
			},
			IsSafeOrganic: true,
		},
	},
	healthy("Grape___healthy", "Grape"),

	// Orange (1)
	{
		Label:   "Orange___Haunglongbing_(Citrus_greening)",
		Crop:    "Orange",
		Disease: "Citrus greening (Huanglongbing)",
		Advice: Advice{
			Explanation: "Bacterial disease spread by the citrus psyllid insect. Leaves show blotchy yellow mottling and fruit stay small, green and bitter. There is no cure.",
			TreatmentSteps: []string{
				"Remove and destroy infected trees to protect the rest of the orchard.",
				"Control psyllids with neem oil or a recommended insecticide.",
				"Feed remaining trees with balanced nutrients including zinc and manganese.",
			},
			PreventionTips: []string{
				"Buy certified disease-free saplings only.",
				"Inspect new flush regularly for psyllids.",
			},
			IsSafeOrganic: false,
		},
	},

	// Peach (2)
	{
		Label:   "Peach___Bacterial_spot",
		Crop:    "Peach",
		Disease: "Bacterial spot",
		Advice: Advice{
			Explanation: "Bacterial disease (Xanthomonas arboricola) causing small angular leaf spots that fall out (shot holes) and pitted, cracked fruit.",
			TreatmentSteps: []string{
				"Spray copper hydroxide at leaf fall and again at bud swell.",
				"Prune out infected twigs during dry weather.",
			},
			PreventionTips: []string{
				"Plant resistant varieties.",
				"Avoid heavy nitrogen and overhead watering.",
			},
			IsSafeOrganic: true,
		},
	},
	healthy("Peach___healthy", "Peach"),

	// Pepper (2)
	{
		Label:   "Pepper,_bell___Bacterial_spot",
		Crop:    "Pepper",
		Disease: "Bacterial spot",
		Advice: Advice{
			Explanation: "Bacterial disease (Xanthomonas) causing small water-soaked spots that turn brown on leaves and raised scabby spots on fruit. It spreads by rain splash.",
			TreatmentSteps: []string{
				"Remove infected plants or leaves.",
				"Spray copper-based bactericide every 7 to 10 days in wet weather.",
				"Do not work in the field when plants are wet.",
			},
			PreventionTips: []string{
				"Use disease-free seed or treat seed with hot water.",
				"Rotate with non-solanaceous crops for two years.",
			},
			IsSafeOrganic: true,
		},
	},
	healthy("Pepper,_bell___healthy", "Pepper"),

	// Potato (3)
	{
		Label:   "Potato___Early_blight",
		Crop:    "Potato",
		Disease: "Early blight",
		Advice: Advice{
			Explanation: "Fungal disease (Alternaria solani) causing dark brown spots with concentric rings on older leaves, reducing tuber size.",
			TreatmentSteps: []string{
				"Remove lower infected leaves.",
				"Spray mancozeb or chlorothalonil at 10 day intervals once spots appear.",
			},
			PreventionTips: []string{
				"Rotate away from potato and tomato for two to three years.",
				"Keep plants well fed, since stressed plants are more susceptible.",
			},
			IsSafeOrganic: false,
		},
	},
	{
		Label:   "Potato___Late_blight",
		Crop:    "Potato",
		Disease: "Late blight",
		Advice: Advice{
			Explanation: "Water mould (Phytophthora infestans) causing large dark water-soaked patches on leaves with white growth underneath. It can destroy a field within days in cool, wet weather.",
			TreatmentSteps: []string{
				"Destroy infected plants immediately, do not compost them.",
				"Spray metalaxyl plus mancozeb or a copper fungicide on the rest of the field.",
				"Repeat every 7 days while weather stays cool and humid.",
			},
			PreventionTips: []string{
				"Plant certified disease-free seed tubers.",
				"Earth up rows well to protect tubers.",
			},
			IsSafeOrganic: false,
		},
	},
	healthy("Potato___healthy", "Potato"),

	// Raspberry, Soybean (2)
	healthy("Raspberry___healthy", "Raspberry"),
	healthy("Soybean___healthy", "Soybean"),

	// Squash (1)
	{
		Label:   "Squash___Powdery_mildew",
		Crop:    "Squash",
		Disease: "Powdery mildew",
		Advice: Advice{
			Explanation: "Fungal disease producing white powdery patches on leaves and stems. Leaves turn yellow and dry, weakening the plant.",
			TreatmentSteps: []string{
				"Spray neem oil or potassium bicarbonate solution every 7 days.",
				"Remove the most affected leaves.",
			},
			PreventionTips: []string{
				"Give plants enough spacing for air flow.",
				"Water at the base in the morning.",
			},
			IsSafeOrganic: true,
		},
	},

	// Strawberry (2)
	{
		Label:   "Strawberry___Leaf_scorch",
		Crop:    "Strawberry",
		Disease: "Leaf scorch",
		Advice: Advice{
			Explanation: "Fungal disease (Diplocarpon earliana) causing many small purple spots that merge until leaves look burnt.",
			TreatmentSteps: []string{
				"Remove and destroy infected leaves after harvest.",
				"Spray a copper fungicide during early growth if the disease was present last season.",
			},
			PreventionTips: []string{
				"Renew beds every few years with healthy plants.",
				"Use drip irrigation instead of overhead watering.",
			},
			IsSafeOrganic: true,
		},
	},
	healthy("Strawberry___healthy", "Strawberry"),

	// Tomato (10)
	{
		Label:   "Tomato___Bacterial_spot",
		Crop:    "Tomato",
		Disease: "Bacterial spot",
		Advice: Advice{
			Explanation: "Bacterial disease (Xanthomonas) causing small dark greasy spots on leaves and raised scabs on fruit. Warm rain spreads it quickly.",
			TreatmentSteps: []string{
				"Remove infected leaves and badly affected plants.",
				"Spray copper hydroxide every 7 to 10 days during wet weather.",
			},
			PreventionTips: []string{
				"Use certified seed and healthy transplants.",
				"Rotate with non-solanaceous crops.",
			},
			IsSafeOrganic: true,
		},
	},
	{
		Label:   "Tomato___Early_blight",
		Crop:    "Tomato",
		Disease: "Early blight",
		Advice: Advice{
			Explanation: "Fungal disease (Alternaria solani) causing brown spots with target-like rings on older leaves, starting from the bottom of the plant.",
			TreatmentSteps: []string{
				"Remove infected lower leaves and destroy them.",
				"Spray neem oil or a copper fungicide every 7 to 10 days.",
				"Mulch around plants so soil does not splash onto leaves.",
			},
			PreventionTips: []string{
				"Rotate crops and avoid planting tomato after potato.",
				"Stake plants and water at the base.",
			},
			IsSafeOrganic: true,
		},
	},
	{
		Label:   "Tomato___Late_blight",
		Crop:    "Tomato",
		Disease: "Late blight",
		Advice: Advice{
			Explanation: "Water mould (Phytophthora infestans) causing large greasy dark patches on leaves and firm brown rot on fruit. It spreads very fast in cool, damp weather.",
			TreatmentSteps: []string{
				"Pull out and destroy infected plants at once.",
				"Spray metalaxyl plus mancozeb or a copper fungicide on healthy plants.",
			},
			PreventionTips: []string{
				"Do not plant near potato fields.",
				"Keep leaves dry and improve spacing.",
			},
			IsSafeOrganic: false,
		},
	},
	{
		Label:   "Tomato___Leaf_Mold",
		Crop:    "Tomato",
		Disease: "Leaf mold",
		Advice: Advice{
			Explanation: "Fungal disease (Passalora fulva) causing pale yellow patches on the upper leaf and olive-green mould underneath. Common in humid greenhouses.",
			TreatmentSteps: []string{
				"Remove affected leaves.",
				"Improve ventilation and reduce humidity.",
				"Spray a copper fungicide if it keeps spreading.",
			},
			PreventionTips: []string{
				"Keep humidity below 85% in protected cultivation.",
				"Use resistant varieties.",
			},
			IsSafeOrganic: true,
		},
	},
	{
		Label:   "Tomato___Septoria_leaf_spot",
		Crop:    "Tomato",
		Disease: "Septoria leaf spot",
		Advice: Advice{
			Explanation: "Fungal disease (Septoria lycopersici) causing many small round spots with dark edges and grey centres on lower leaves.",
			TreatmentSteps: []string{
				"Remove spotted leaves.",
				"Spray chlorothalonil or a copper fungicide every 7 to 10 days.",
			},
			PreventionTips: []string{
				"Rotate crops for at least one year.",
				"Avoid overhead watering and remove weeds from the nightshade family.",
			},
			IsSafeOrganic: false,
		},
	},
	{
		Label:   "Tomato___Spider_mites Two-spotted_spider_mite",
		Crop:    "Tomato",
		Disease: "Two-spotted spider mite",
		Advice: Advice{
			Explanation: "Tiny mites that suck sap from the underside of leaves, causing fine yellow speckling and webbing. Hot, dry weather favours them.",
			TreatmentSteps: []string{
				"Spray the underside of leaves with a strong jet of water.",
				"Apply neem oil or insecticidal soap every 5 to 7 days.",
			},
			PreventionTips: []string{
				"Keep plants well watered during dry spells.",
				"Avoid broad-spectrum insecticides that kill natural predators.",
			},
			IsSafeOrganic: true,
		},
	},
	{
		Label:   "Tomato___Target_Spot",
		Crop:    "Tomato",
		Disease: "Target spot",
		Advice: Advice{
			Explanation: "Fungal disease (Corynespora cassiicola) causing brown spots with light centres and rings on leaves, stems and fruit.",
			TreatmentSteps: []string{
				"Remove lower infected leaves.",
				"Spray chlorothalonil or mancozeb at 7 to 14 day intervals.",
			},
			PreventionTips: []string{
				"Improve air movement by pruning and staking.",
				"Remove crop residue after harvest.",
			},
			IsSafeOrganic: false,
		},
	},
	{
		Label:   "Tomato___Tomato_Yellow_Leaf_Curl_Virus",
		Crop:    "Tomato",
		Disease: "Yellow leaf curl virus",
		Advice: Advice{
			Explanation: "Virus spread by whiteflies. Leaves curl upward, turn yellow at the edges and plants become stunted with few fruits.",
			TreatmentSteps: []string{
				"Uproot and destroy infected plants.",
				"Control whiteflies with yellow sticky traps and neem oil sprays.",
			},
			PreventionTips: []string{
				"Raise seedlings under insect-proof net.",
				"Grow tolerant varieties and remove weed hosts.",
			},
			IsSafeOrganic: true,
		},
	},
	{
		Label:   "Tomato___Tomato_mosaic_virus",
		Crop:    "Tomato",
		Disease: "Mosaic virus",
		Advice: Advice{
			Explanation: "Virus causing light and dark green mottling on leaves, leaf distortion and uneven fruit ripening. It spreads through hands, tools and seed.",
			TreatmentSteps: []string{
				"Remove and destroy infected plants.",
				"Wash hands and disinfect tools after handling plants.",
			},
			PreventionTips: []string{
				"Use certified virus-free seed.",
				"Do not use tobacco products while working with plants.",
			},
			IsSafeOrganic: true,
		},
	},
	healthy("Tomato___healthy", "Tomato"),
}

func healthy(label, crop string) Entry {
	return Entry{
		Label:   label,
		Crop:    crop,
		Disease: "Healthy",
		Healthy: true,
		Advice: Advice{
			Explanation: "No disease detected. The " + crop + " leaf looks healthy.",
			TreatmentSteps: []string{
				"No treatment needed.",
				"Keep checking leaves once a week.",
			},
			PreventionTips: []string{
				"Continue balanced watering and fertilising.",
				"Remove weeds and keep the field clean.",
			},
			IsSafeOrganic: true,
		},
	}
}
