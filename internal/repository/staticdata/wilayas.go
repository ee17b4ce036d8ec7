package staticdata

import "titoubarz-backend/internal/domain"

// wilayas is the complete table of Algerian wilayas with their communes and
// standard delivery prices. This is reference data shipped with the binary;
// a price change means a new deployment, not a data migration. Commune lists
// keep their original ordering, including the duplicated entries present in
// the source table (membership checks treat them as a set, display keeps the
// sequence).
var wilayas = []domain.Wilaya{
	{
		ID:   "1",
		Name: "Adrar",
		Communes: []string{
			"Adrar", "Tamest", "Reggane", "In Zghmir", "Tit", "Zaouiet Kounta",
			"Ksar Kaddour", "Timimoun", "Ouled Aissa", "Bouda", "Akabli", "Sali",
			"Talmine", "Aougrout", "Charouine", "Deldoul", "Sbaa",
		},
		DeliveryPrice: 1300,
	},
	{
		ID:   "2",
		Name: "Chlef",
		Communes: []string{
			"Chlef", "Ténès", "Benairia", "El Karimia", "Oued Fodda", "Ouled Ben Abdelkader",
			"Boukadir", "Beni Rached", "El Marsa", "Harchoun", "Ouled Fares", "Tadjna",
			"Taougrit", "El Hadjadj", "Ouled Abbes", "Sidi Akkacha", "Sobha",
		},
		DeliveryPrice: 750,
	},
	{
		ID:   "3",
		Name: "Laghouat",
		Communes: []string{
			"Laghouat", "Ksar El Hirane", "Hassi R'Mel", "Aflou", "El Assafia", "Oued Morra",
			"Gueltat Sidi Saad", "Hassi Delaa", "Tadjmout", "Kheneg", "El Ghicha", "Hassi R'Mel",
			"Ain Madhi", "Tadjrouna", "Sidi Makhlouf", "El Beidha", "Sidi Slimane",
		},
		DeliveryPrice: 950,
	},
	{
		ID:   "4",
		Name: "Oum El Bouaghi",
		Communes: []string{
			"Oum El Bouaghi", "Ain Beida", "Ain M'Lila", "Ain Babouche", "Ain Fakroun",
			"Ain Kercha", "Dhalaa", "F'Kirina", "Ouled Gacem", "Sigus", "El Amiria",
			"Ouled Hamla", "Meskiana", "Ain Zitoun", "Berriche", "Ouled Zouai",
		},
		DeliveryPrice: 850,
	},
	{
		ID:   "5",
		Name: "Batna",
		Communes: []string{
			"Batna", "Merouana", "Seriana", "Menaa", "El Madher", "Tazoult", "N'Gaous",
			"Guigba", "Inoughissen", "Maafa", "Arris", "Barika", "Djezzar", "Timgad",
			"Fesdis", "Ouled Si Slimane", "Chemora", "Oued Chaaba", "Bouzina",
		},
		DeliveryPrice: 850,
	},
	{
		ID:   "6",
		Name: "Béjaïa",
		Communes: []string{
			"Béjaïa", "Amizour", "Feraoun", "Tazmalt", "Béni Maouche", "Timezrit",
			"Souk El Tenine", "M'Cisna", "Ighil Ali", "Adekar", "Akbou", "Seddouk",
			"Tichy", "Aokas", "Darguina", "Sidi Aich", "El Kseur", "Barbacha",
			"Kendira", "Tifra", "Beni Djellil", "Souk Oufella", "Taskriout",
		},
		DeliveryPrice: 750,
	},
	{
		ID:   "7",
		Name: "Biskra",
		Communes: []string{
			"Biskra", "Oumache", "Branis", "Chetma", "Ouled Djellal", "Sidi Okba",
			"M'Chouneche", "Mekhadma", "El Haouch", "Ain Naga", "Zeribet El Oued",
			"El Outaya", "Lioua", "Lichana", "Ourlal", "M'Lili", "Djemorah",
			"Tolga", "Bordj Ben Azzouz", "El Kantara", "Ain Zaatout", "Bouchagroun",
		},
		DeliveryPrice: 900,
	},
	{
		ID:   "8",
		Name: "Béchar",
		Communes: []string{
			"Béchar", "Erg Ferradj", "Ouled Khodeir", "Meridja", "Timoudi", "Boukais",
			"Mechraa Houari Boushaki", "Kenadsa", "Igli", "Tabelbala", "Taghit",
			"El Ouata", "Kerzaz", "Ouled Khodeir", "Boukais", "Abadla", "Beni Ounif",
		},
		DeliveryPrice: 1200,
	},
	{
		ID:   "9",
		Name: "Blida",
		Communes: []string{
			"Blida", "Chebli", "Bouinan", "Oued Alleug", "Ouled Yaich", "Chiffa",
			"Hammam Melouane", "Ben Khlil", "Soumaa", "Guerouaou", "Ain Romana",
			"Djebabra", "Bouarfa", "Beni Tamou", "Souidania", "Beni Mered",
			"Boufarik", "Oued Djer", "Larbaa", "Meftah", "Ouled Slama",
		},
		DeliveryPrice: 600,
	},
	{
		ID:   "10",
		Name: "Bouira",
		Communes: []string{
			"Bouira", "El Asnam", "Guerrouma", "Souk El Khemis", "Kadiria", "Hanif",
			"Dirah", "Ain Bessam", "Bechloul", "Bir Ghbalou", "Bordj Okhriss",
			"El Hachimia", "Sour El Ghozlane", "Maala", "Ain El Hadjar", "Haizer",
			"Aghbalou", "Taghzout", "Ain Turk", "Bouderbala", "El Adjiba",
		},
		DeliveryPrice: 650,
	},
	{
		ID:   "11",
		Name: "Tamanrasset",
		Communes: []string{
			"Tamanrasset", "Abalessa", "In Ghar", "In Guezzam", "Idles", "Tazrouk",
			"Tin Zaouatine", "Djanet", "In Amguel", "Foggaret Ezzaouia", "Tamanrasset",
			"In Salah", "Ain Salah", "Foggaret Ezzaouia", "In Ghar", "In Guezzam",
		},
		DeliveryPrice: 1450,
	},
	{
		ID:   "12",
		Name: "Tébessa",
		Communes: []string{
			"Tébessa", "Bir El Ater", "Cheria", "Stah Guentis", "El Aouinet", "El Ogla",
			"Bir Mokadem", "Negrine", "El Kouif", "Morsott", "El Ma Labiodh", "Oum Ali",
			"Ain Zerga", "Bedjene", "Boulhaf Dir", "El Meridj", "El Hamma", "Nakhess",
			"Ain Fechka", "El Ogla El Malha", "Oum Ali", "Tlidjene",
		},
		DeliveryPrice: 850,
	},
	{
		ID:   "13",
		Name: "Tlemcen",
		Communes: []string{
			"Tlemcen", "Beni Mester", "Bensekrane", "Chetouane", "Mansourah", "Nedroma",
			"Remchi", "El Fehoul", "Ouled Mimoun", "Ain Tallout", "Hennaya", "Maghnia",
			"Hammam Boughrara", "Ain Fetah", "El Aricha", "Sabra", "Ghazaouet",
			"Marsa Ben M'Hidi", "Ain Ghoraba", "Chetouane", "Beni Snous",
		},
		DeliveryPrice: 850,
	},
	{
		ID:   "14",
		Name: "Tiaret",
		Communes: []string{
			"Tiaret", "Medroussa", "Ain Deheb", "Sougueur", "Frenda", "Rahouia",
			"Mechraa Sfa", "Bougara", "Nadorah", "Ain Kermes", "Dahmouni", "Sidi Ali Mellal",
			"Sidi Bakhti", "Ain Zarit", "Naima", "Tousnina", "Faidja", "Sebaine",
			"Rassoul", "Guertoufa", "Sidi Hosni", "Djebilet Rosfa",
		},
		DeliveryPrice: 800,
	},
	{
		ID:   "15",
		Name: "Tizi Ouzou",
		Communes: []string{
			"Tizi Ouzou", "Ain El Hammam", "Ouacif", "Azeffoun", "Yakouren", "Draa El Mizan",
			"Tizi Gheniff", "Boghni", "Ifigha", "Ait Aggouacha", "Mekla", "Tizi Rached",
			"Irdjen", "Tizi N'Tleta", "Beni Douala", "Ouadhias", "Azeffoun", "Tigzirt",
			"Mizrana", "Imsouhal", "Tadmait", "Freha", "Ain Zaouia", "Abi Youcef",
		},
		DeliveryPrice: 750,
	},
	{
		ID:   "16",
		Name: "Alger",
		Communes: []string{
			"Alger Centre", "Bab El Oued", "Bologhine", "Casbah", "Hussein Dey", "Kouba",
			"El Harrach", "Baraki", "Oued Smar", "Dar El Beida", "Birkhadem", "El Biar",
			"Bouzareah", "Ben Aknoun", "Hydra", "El Madania", "El Mouradia", "Bab Ezzouar",
			"Bordj El Kiffan", "El Marsa", "Rouiba", "Reghaia", "Ain Taya", "Bordj El Bahri",
			"El Kerma", "Oued Koriche", "Bourouba", "El Magharia", "Oued Smar", "Sidi Moussa",
		},
		DeliveryPrice: 450,
	},
	{
		ID:   "17",
		Name: "Djelfa",
		Communes: []string{
			"Djelfa", "El Idrissia", "Oum Laadham", "Hassi Bahbah", "Ain Maabed", "Sed Rahal",
			"Feidh El Botma", "Birine", "Bouira Lahdab", "Ain Oussara", "Hassi El Euch",
			"M'Liliha", "El Guedid", "Deldoul", "Sidi Laadjel", "Guernini", "Selmana",
			"Ain Chouhada", "Oum Laadham", "El Idrissia", "Hassi Bahbah", "Ain Maabed",
		},
		DeliveryPrice: 900,
	},
	{
		ID:   "18",
		Name: "Jijel",
		Communes: []string{
			"Jijel", "El Ancer", "Sidi Maarouf", "El Milia", "Settara", "El Kennar Nouchfi",
			"Ghebala", "Bouraoui Belhadef", "Djemaa Beni Habibi", "Bordj Taher", "Emir Abdelkader",
			"Chekfa", "Ghebala", "El Kennar Nouchfi", "Settara", "El Milia", "Sidi Maarouf",
			"El Ancer", "Bouraoui Belhadef", "Djemaa Beni Habibi", "Bordj Taher", "Emir Abdelkader",
		},
		DeliveryPrice: 850,
	},
	{
		ID:   "19",
		Name: "Sétif",
		Communes: []string{
			"Sétif", "El Eulma", "Ain Oulmene", "Ain Azel", "Bougaa", "Babor", "Guidjel",
			"Hammam Guergour", "Ain Arnat", "Bir Haddada", "El Ouricia", "Tizi N'Bechar",
			"Ain Abessa", "Ain Lahdjar", "Ain Sebt", "Ain Roua", "Draa Kebila", "Tala Ifacene",
			"Ain Legradj", "Ain Azel", "Bougaa", "Babor", "Guidjel", "Hammam Guergour",
		},
		DeliveryPrice: 800,
	},
	{
		ID:   "20",
		Name: "Saïda",
		Communes: []string{
			"Saïda", "Doui Thabet", "Ain Soltane", "Ouled Brahim", "Moulay Larbi", "Ain El Hadjar",
			"Sidi Boubekeur", "El Hassasna", "Youb", "Tircine", "Ain Skhouna", "Maamora",
			"Ouled Khaled", "Ain El Hadjar", "Sidi Boubekeur", "El Hassasna", "Youb", "Tircine",
			"Ain Skhouna", "Maamora", "Ouled Khaled", "Doui Thabet", "Ain Soltane",
		},
		DeliveryPrice: 850,
	},
	{
		ID:   "21",
		Name: "Skikda",
		Communes: []string{
			"Skikda", "Azzaba", "El Harrouch", "Tamalous", "Ain Bouziane", "Collo", "Ben Azzouz",
			"Ouldja Boulballout", "Kerkera", "Emdjez Edchich", "Beni Oulbane", "Ain Kechra",
			"Oum Toub", "El Ghedir", "El Marsa", "Sidi Mezghiche", "Ain Bouziane", "Collo",
			"Ben Azzouz", "Ouldja Boulballout", "Kerkera", "Emdjez Edchich", "Beni Oulbane",
		},
		DeliveryPrice: 800,
	},
	{
		ID:   "22",
		Name: "Sidi Bel Abbès",
		Communes: []string{
			"Sidi Bel Abbès", "Tessala", "Sidi Brahim", "Mostefa Ben Brahim", "Telagh", "Dhaya",
			"Chetouane Belaila", "Tenira", "Ben Badis", "Sehala Thaoura", "Ain Thrid", "Makedra",
			"Sidi Ali Boussidi", "Sidi Lahcene", "Ain Tindamine", "Moulay Slissen", "Oued Taourira",
			"Sidi Hamadouche", "Tessala", "Sidi Brahim", "Mostefa Ben Brahim", "Telagh", "Dhaya",
		},
		DeliveryPrice: 800,
	},
	{
		ID:   "23",
		Name: "Annaba",
		Communes: []string{
			"Annaba", "Berrahel", "El Hadjar", "Eulma", "El Bouni", "Oued El Aneb", "Tréat",
			"Ain Berda", "Chetaibi", "Seraidi", "El Eulma", "El Bouni", "Oued El Aneb", "Tréat",
			"Ain Berda", "Chetaibi", "Seraidi", "Berrahel", "El Hadjar", "Eulma", "El Bouni",
		},
		DeliveryPrice: 800,
	},
	{
		ID:   "24",
		Name: "Guelma",
		Communes: []string{
			"Guelma", "Nechmaya", "Bouati Mahmoud", "Oued Zenati", "Tamlouka", "Ain Makhlouf",
			"Ain Ben Beida", "Bou Hamdane", "Ain Larbaa", "Bou Hachana", "Hammam Debagh",
			"Ain Sandel", "Dahouara", "Belkheir", "Ben Djarah", "Bouati Mahmoud", "Oued Zenati",
			"Tamlouka", "Ain Makhlouf", "Ain Ben Beida", "Bou Hamdane", "Ain Larbaa",
		},
		DeliveryPrice: 800,
	},
	{
		ID:   "25",
		Name: "Constantine",
		Communes: []string{
			"Constantine", "Hamma Bouziane", "El Khroub", "Ouled Rahmoune", "Ain Abid", "Zighoud Youcef",
			"Didouche Mourad", "Ibn Ziad", "Beni Hamiden", "Zitouna", "El Khroub", "Hamma Bouziane",
			"Ouled Rahmoune", "Ain Abid", "Zighoud Youcef", "Didouche Mourad", "Ibn Ziad",
			"Beni Hamiden", "Zitouna", "El Khroub", "Hamma Bouziane", "Ouled Rahmoune",
		},
		DeliveryPrice: 800,
	},
	{
		ID:   "26",
		Name: "Médéa",
		Communes: []string{
			"Médéa", "Ouzera", "Berrouaghia", "Seghouane", "Ksar El Boukhari", "Khemis El Khechna",
			"Sidi Naamane", "Ouled Antar", "Tablat", "Beni Slimane", "Ain Boucif", "Souagui",
			"Ouled Hellal", "El Omaria", "Derrag", "Tlatet Ed Douair", "Beni Slimane", "Tablat",
			"Ouled Antar", "Sidi Naamane", "Khemis El Khechna", "Ksar El Boukhari", "Seghouane",
		},
		DeliveryPrice: 700,
	},
	{
		ID:   "27",
		Name: "Mostaganem",
		Communes: []string{
			"Mostaganem", "Hassi Mamèche", "Ain Tadles", "Sour", "Oued El Kheir", "Sidi Ali",
			"Abdelmalek Ramdane", "Hadjadj", "Nekmaria", "Sidi Lakhdar", "Ain Sidi Cherif",
			"Mesra", "Ain Nouissy", "Hassiane", "Safsaf", "Tounane", "Achaacha", "Sidi Ali",
			"Oued El Kheir", "Sour", "Ain Tadles", "Hassi Mamèche", "Abdelmalek Ramdane",
		},
		DeliveryPrice: 800,
	},
	{
		ID:   "28",
		Name: "M'Sila",
		Communes: []string{
			"M'Sila", "Maadid", "Hammam Dhalaa", "Ouled Derradj", "Sidi Aissa", "Ain El Hadjel",
			"Ouled Sidi Brahim", "Sidi Ameur", "Ben Srour", "Ouled Addi Guebala", "Ain El Hadjel",
			"Ouled Sidi Brahim", "Sidi Ameur", "Ben Srour", "Ouled Addi Guebala", "Maadid",
			"Hammam Dhalaa", "Ouled Derradj", "Sidi Aissa", "Ain El Hadjel", "Ouled Sidi Brahim",
		},
		DeliveryPrice: 850,
	},
	{
		ID:   "29",
		Name: "Mascara",
		Communes: []string{
			"Mascara", "Bou Hanifia", "Tizi", "Hacine", "Aouf", "Ain Fekan", "Sig", "El Bordj",
			"Mohammedia", "Sidi Kada", "Zelameta", "Ain Fares", "Sidi Abdelmoumen", "Ferraguig",
			"Ghriss", "El Gaada", "Zahana", "Mohammedia", "El Bordj", "Sig", "Ain Fekan",
			"Aouf", "Hacine", "Tizi", "Bou Hanifia",
		},
		DeliveryPrice: 800,
	},
	{
		ID:   "30",
		Name: "Ouargla",
		Communes: []string{
			"Ouargla", "Ain Beida", "Ngoussa", "Hassi Messaoud", "Rouissat", "Balidat Ameur",
			"Temacine", "Zaouia El Abidia", "Sidi Khouiled", "El Hadjira", "N'Goussa",
			"Hassi Messaoud", "Rouissat", "Balidat Ameur", "Temacine", "Zaouia El Abidia",
			"Sidi Khouiled", "El Hadjira", "Ain Beida", "Ngoussa", "Hassi Messaoud",
		},
		DeliveryPrice: 950,
	},
	{
		ID:   "31",
		Name: "Oran",
		Communes: []string{
			"Oran", "Bir El Djir", "Es Senia", "Ain El Turk", "El Ancar", "Oued Tlelat",
			"Boutlelis", "Ain El Kerma", "Ben Freha", "Gdyel", "Hassi Ben Okba", "Sidi Chami",
			"Bir El Djir", "Es Senia", "Ain El Turk", "El Ancar", "Oued Tlelat", "Boutlelis",
			"Ain El Kerma", "Ben Freha", "Gdyel", "Hassi Ben Okba", "Sidi Chami",
		},
		DeliveryPrice: 800,
	},
	{
		ID:   "32",
		Name: "El Bayadh",
		Communes: []string{
			"El Bayadh", "Rogassa", "Brezina", "El Abiodh Sidi Cheikh", "Arbaouet", "Boualem",
			"El Bnoud", "Chellala", "Krakda", "El Kheither", "Brezina", "El Abiodh Sidi Cheikh",
			"Arbaouet", "Boualem", "El Bnoud", "Chellala", "Krakda", "El Kheither", "Rogassa",
			"Brezina", "El Abiodh Sidi Cheikh", "Arbaouet", "Boualem",
		},
		DeliveryPrice: 900,
	},
	{
		ID:   "33",
		Name: "Illizi",
		Communes: []string{
			"Illizi", "Djanet", "In Amenas", "Bordj Omar Driss", "Debdeb", "Bordj El Haouas",
			"In Amenas", "Bordj Omar Driss", "Debdeb", "Bordj El Haouas", "Djanet", "Illizi",
		},
		DeliveryPrice: 1950,
	},
	{
		ID:   "34",
		Name: "Bordj Bou Arreridj",
		Communes: []string{
			"Bordj Bou Arreridj", "Ras El Oued", "Bordj Zemoura", "Mansourah", "El M'hir",
			"Ben Daoud", "El Achir", "Ain Taghrout", "Bordj Ghdir", "Colla", "Tefreg",
			"Taglait", "El Anseur", "Tassamert", "El Achir", "Ain Taghrout", "Bordj Ghdir",
			"Colla", "Tefreg", "Taglait", "El Anseur", "Tassamert",
		},
		DeliveryPrice: 750,
	},
	{
		ID:   "35",
		Name: "Boumerdès",
		Communes: []string{
			"Boumerdès", "Boudouaou", "Isser", "Khemis El Khechna", "Thenia", "Corso",
			"Naciria", "Baghlia", "Sidi Daoud", "Dellys", "Ammal", "Beni Amrane",
			"Souk El Had", "Thenia", "Corso", "Naciria", "Baghlia", "Sidi Daoud",
			"Dellys", "Ammal", "Beni Amrane", "Souk El Had",
		},
		DeliveryPrice: 600,
	},
	{
		ID:   "36",
		Name: "El Tarf",
		Communes: []string{
			"El Tarf", "Bouhadjar", "Ben M'Hidi", "Bouteldja", "El Kala", "Ain El Assel",
			"Chebaita Mokhtar", "Besbes", "Asfour", "Zitouna", "Bouhadjar", "Ben M'Hidi",
			"Bouteldja", "El Kala", "Ain El Assel", "Chebaita Mokhtar", "Besbes", "Asfour",
			"Zitouna", "Bouhadjar", "Ben M'Hidi", "Bouteldja",
		},
		DeliveryPrice: 850,
	},
	{
		ID:   "37",
		Name: "Tindouf",
		Communes: []string{
			"Tindouf", "Oum El Assel", "Tindouf", "Oum El Assel",
		},
		DeliveryPrice: 1450,
	},
	{
		ID:   "38",
		Name: "Tissemsilt",
		Communes: []string{
			"Tissemsilt", "Bordj Bounaama", "Theniet El Had", "Lazharia", "Beni Chaib",
			"Ouled Bessem", "Lardjem", "Maacem", "Sidi Lantri", "Boucaid", "Ammari",
			"Youssoufia", "Lazharia", "Beni Chaib", "Ouled Bessem", "Lardjem", "Maacem",
			"Sidi Lantri", "Boucaid", "Ammari", "Youssoufia",
		},
		DeliveryPrice: 850,
	},
	{
		ID:   "39",
		Name: "El Oued",
		Communes: []string{
			"El Oued", "Robbah", "Oued El Alenda", "Bayadha", "Nakhla", "Guemar",
			"Kouinine", "Reguiba", "Hamraia", "Taghzout", "Debila", "Hassani Abdelkrim",
			"Taleb Larbi", "Magrane", "El M'Ghair", "Oum Tiour", "Djamaa", "Tendla",
			"Still", "El Goléa", "Robbah", "Oued El Alenda",
		},
		DeliveryPrice: 950,
	},
	{
		ID:   "40",
		Name: "Khenchela",
		Communes: []string{
			"Khenchela", "Kais", "Ouled Rechache", "El Hamma", "Ain Touila", "Babar",
			"Tamza", "Bouhmama", "El Oueldja", "Remila", "El Hamma", "Ain Touila",
			"Babar", "Tamza", "Bouhmama", "El Oueldja", "Remila", "Kais", "Ouled Rechache",
			"El Hamma", "Ain Touila", "Babar",
		},
		DeliveryPrice: 850,
	},
	{
		ID:   "41",
		Name: "Souk Ahras",
		Communes: []string{
			"Souk Ahras", "Sedrata", "Hannacha", "Mechroha", "Ouled Driss", "Tiffech",
			"Zaarouria", "Drea", "Haddada", "Khedara", "Sedrata", "Hannacha", "Mechroha",
			"Ouled Driss", "Tiffech", "Zaarouria", "Drea", "Haddada", "Khedara", "Sedrata",
			"Hannacha", "Mechroha",
		},
		DeliveryPrice: 850,
	},
	{
		ID:   "42",
		Name: "Tipaza",
		Communes: []string{
			"Tipaza", "Menaceur", "Larhat", "Douaouda", "Bou Ismaïl", "Kolea", "Attatba",
			"Chaiba", "Ain Tagourait", "Hadjout", "Sidi Rached", "Nador", "Hadjout",
			"Ain Tagourait", "Chaiba", "Attatba", "Kolea", "Bou Ismaïl", "Douaouda",
			"Larhat", "Menaceur", "Tipaza",
		},
		DeliveryPrice: 650,
	},
	{
		ID:   "43",
		Name: "Mila",
		Communes: []string{
			"Mila", "Ferdjioua", "Grarem Gouga", "Oued Endja", "Rouached", "Tassadane Haddada",
			"Sidi Merouane", "Tadjenanet", "Benyahia Abderrahmane", "Terrai Bainen", "Ferdjioua",
			"Grarem Gouga", "Oued Endja", "Rouached", "Tassadane Haddada", "Sidi Merouane",
			"Tadjenanet", "Benyahia Abderrahmane", "Terrai Bainen", "Ferdjioua", "Grarem Gouga",
		},
		DeliveryPrice: 800,
	},
	{
		ID:   "44",
		Name: "Aïn Defla",
		Communes: []string{
			"Aïn Defla", "Miliana", "Boumedfaa", "Khemis Miliana", "Hammam Righa", "Arib",
			"Djelida", "El Amra", "Boufarik", "El Attaf", "Miliana", "Boumedfaa",
			"Khemis Miliana", "Hammam Righa", "Arib", "Djelida", "El Amra", "Boufarik",
			"El Attaf", "Miliana", "Boumedfaa", "Khemis Miliana",
		},
		DeliveryPrice: 750,
	},
	{
		ID:   "45",
		Name: "Naâma",
		Communes: []string{
			"Naâma", "Mechria", "Ain Sefra", "Tiout", "Sfissifa", "Moghrar", "Assela",
			"Djeniene Bourezg", "Ain Ben Khelil", "Makman Ben Amer", "Mechria", "Ain Sefra",
			"Tiout", "Sfissifa", "Moghrar", "Assela", "Djeniene Bourezg", "Ain Ben Khelil",
			"Makman Ben Amer", "Mechria", "Ain Sefra", "Tiout",
		},
		DeliveryPrice: 950,
	},
	{
		ID:   "46",
		Name: "Aïn Témouchent",
		Communes: []string{
			"Aïn Témouchent", "Chaabet El Leham", "Chentouf", "Hammam Bou Hadjar", "Bou Zedjar",
			"Oued Berkeche", "Ain Tolba", "Ain Kihal", "Emir Abdelkader", "Hassasna",
			"Chaabet El Leham", "Chentouf", "Hammam Bou Hadjar", "Bou Zedjar", "Oued Berkeche",
			"Ain Tolba", "Ain Kihal", "Emir Abdelkader", "Hassasna", "Chaabet El Leham",
		},
		DeliveryPrice: 850,
	},
	{
		ID:   "47",
		Name: "Ghardaïa",
		Communes: []string{
			"Ghardaïa", "El Meniaa", "Hassi Fehal", "Metlili", "Berriane", "El Guerrara",
			"Zelfana", "Sebseb", "Bounoura", "El Atteuf", "El Meniaa", "Hassi Fehal",
			"Metlili", "Berriane", "El Guerrara", "Zelfana", "Sebseb", "Bounoura",
			"El Atteuf", "El Meniaa", "Hassi Fehal", "Metlili",
		},
		DeliveryPrice: 950,
	},
	{
		ID:   "48",
		Name: "Relizane",
		Communes: []string{
			"Relizane", "Oued Rhiou", "Belaassel Bouzegza", "Sidi M'Hamed Ben Ali",
			"Oued El Djemaa", "Ramka", "Mendes", "Lahlef", "Beni Dergoun", "Djidiouia",
			"Oued Rhiou", "Belaassel Bouzegza", "Sidi M'Hamed Ben Ali", "Oued El Djemaa",
			"Ramka", "Mendes", "Lahlef", "Beni Dergoun", "Djidiouia", "Oued Rhiou",
		},
		DeliveryPrice: 800,
	},
	{
		ID:   "49",
		Name: "Timimoun",
		Communes: []string{
			"Timimoun", "Ouled Aissa", "Charouine", "Talmine", "Aougrout", "Deldoul",
			"Sbaa", "Ouled Aissa", "Charouine", "Talmine", "Aougrout", "Deldoul", "Sbaa",
		},
		DeliveryPrice: 1450,
	},
	{
		ID:   "50",
		Name: "Bordj Badji Mokhtar",
		Communes: []string{
			"Bordj Badji Mokhtar", "In Ghar", "Tazrouk", "In Ghar", "Tazrouk",
		},
		DeliveryPrice: 1900,
	},
	{
		ID:   "51",
		Name: "Ouled Djellal",
		Communes: []string{
			"Ouled Djellal", "Ras El Miaad", "Besbes", "Doucen", "Chadames", "El Meghaier",
			"Ras El Miaad", "Besbes", "Doucen", "Chadames", "El Meghaier", "Ouled Djellal",
		},
		DeliveryPrice: 950,
	},
	{
		ID:   "52",
		Name: "Beni Abbes",
		Communes: []string{
			"Beni Abbes", "Igli", "El Ouata", "Kerzaz", "Ouled Khodeir", "Igli",
			"El Ouata", "Kerzaz", "Ouled Khodeir", "Beni Abbes",
		},
		DeliveryPrice: 1300,
	},
	{
		ID:   "53",
		Name: "In Salah",
		Communes: []string{
			"In Salah", "Foggaret Ezzaouia", "In Ghar", "Foggaret Ezzaouia", "In Ghar",
		},
		DeliveryPrice: 1500,
	},
	{
		ID:   "54",
		Name: "In Guezzam",
		Communes: []string{
			"In Guezzam",
		},
		DeliveryPrice: 0,
	},
	{
		ID:   "55",
		Name: "Touggourt",
		Communes: []string{
			"Touggourt", "Temacine", "Zaouia El Abidia", "Blidet Amor", "El Hadjira",
			"El Alia", "El Borma", "Temacine", "Zaouia El Abidia", "Blidet Amor",
			"El Hadjira", "El Alia", "El Borma",
		},
		DeliveryPrice: 950,
	},
	{
		ID:   "56",
		Name: "Djanet",
		Communes: []string{
			"Djanet", "Bordj El Haouas", "Bordj El Haouas",
		},
		DeliveryPrice: 0,
	},
	{
		ID:   "57",
		Name: "El M'Ghair",
		Communes: []string{
			"El M'Ghair", "Oum Tiour", "Djamaa", "Tendla", "Still", "El Goléa",
			"Oum Tiour", "Djamaa", "Tendla", "Still", "El Goléa",
		},
		DeliveryPrice: 950,
	},
	{
		ID:   "58",
		Name: "El Meniaa",
		Communes: []string{
			"El Meniaa", "Hassi Gara", "Mansourah", "Sidi Slimane", "Hassi Gara",
			"Mansourah", "Sidi Slimane",
		},
		DeliveryPrice: 950,
	},
}
