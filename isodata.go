package money

// Bundled ISO 4217 catalog. Registration order matters: when several codes
// share a numeric value (obsolete currencies reuse numerics such as "032"
// and "076"), the entry registered last owns the numeric index, so current
// codes are registered first and historical ones after.

type isoEntry struct {
	code    string
	numeric string
	name    string
}

var isoCurrencies = []isoEntry{
	{"AED", "784", "UAE Dirham"},
	{"AFN", "971", "Afghani"},
	{"ALL", "008", "Lek"},
	{"AMD", "051", "Armenian Dram"},
	{"ANG", "532", "Netherlands Antillean Guilder"},
	{"AOA", "973", "Kwanza"},
	{"ARS", "032", "Argentine Peso"},
	{"AUD", "036", "Australian Dollar"},
	{"AWG", "533", "Aruban Florin"},
	{"AZN", "944", "Azerbaijan Manat"},
	{"BAM", "977", "Convertible Mark"},
	{"BBD", "052", "Barbados Dollar"},
	{"BDT", "050", "Taka"},
	{"BGN", "975", "Bulgarian Lev"},
	{"BHD", "048", "Bahraini Dinar"},
	{"BIF", "108", "Burundi Franc"},
	{"BMD", "060", "Bermudian Dollar"},
	{"BND", "096", "Brunei Dollar"},
	{"BOB", "068", "Boliviano"},
	{"BOV", "984", "Mvdol"},
	{"BRL", "986", "Brazilian Real"},
	{"BSD", "044", "Bahamian Dollar"},
	{"BTN", "064", "Ngultrum"},
	{"BWP", "072", "Pula"},
	{"BYN", "933", "Belarusian Ruble"},
	{"BZD", "084", "Belize Dollar"},
	{"CAD", "124", "Canadian Dollar"},
	{"CDF", "976", "Congolese Franc"},
	{"CHE", "947", "WIR Euro"},
	{"CHF", "756", "Swiss Franc"},
	{"CHW", "948", "WIR Franc"},
	{"CLF", "990", "Unidad de Fomento"},
	{"CLP", "152", "Chilean Peso"},
	{"CNY", "156", "Yuan Renminbi"},
	{"COP", "170", "Colombian Peso"},
	{"COU", "970", "Unidad de Valor Real"},
	{"CRC", "188", "Costa Rican Colon"},
	{"CUC", "931", "Peso Convertible"},
	{"CUP", "192", "Cuban Peso"},
	{"CVE", "132", "Cabo Verde Escudo"},
	{"CZK", "203", "Czech Koruna"},
	{"DJF", "262", "Djibouti Franc"},
	{"DKK", "208", "Danish Krone"},
	{"DOP", "214", "Dominican Peso"},
	{"DZD", "012", "Algerian Dinar"},
	{"EGP", "818", "Egyptian Pound"},
	{"ERN", "232", "Nakfa"},
	{"ETB", "230", "Ethiopian Birr"},
	{"EUR", "978", "Euro"},
	{"FJD", "242", "Fiji Dollar"},
	{"FKP", "238", "Falkland Islands Pound"},
	{"GBP", "826", "Pound Sterling"},
	{"GEL", "981", "Lari"},
	{"GHS", "936", "Ghana Cedi"},
	{"GIP", "292", "Gibraltar Pound"},
	{"GMD", "270", "Dalasi"},
	{"GNF", "324", "Guinean Franc"},
	{"GTQ", "320", "Quetzal"},
	{"GYD", "328", "Guyana Dollar"},
	{"HKD", "344", "Hong Kong Dollar"},
	{"HNL", "340", "Lempira"},
	{"HRK", "191", "Kuna"},
	{"HTG", "332", "Gourde"},
	{"HUF", "348", "Forint"},
	{"IDR", "360", "Rupiah"},
	{"ILS", "376", "New Israeli Sheqel"},
	{"IMP", "", "Manx Pound"},
	{"INR", "356", "Indian Rupee"},
	{"IQD", "368", "Iraqi Dinar"},
	{"IRR", "364", "Iranian Rial"},
	{"ISK", "352", "Iceland Krona"},
	{"JMD", "388", "Jamaican Dollar"},
	{"JOD", "400", "Jordanian Dinar"},
	{"JPY", "392", "Yen"},
	{"KES", "404", "Kenyan Shilling"},
	{"KGS", "417", "Som"},
	{"KHR", "116", "Riel"},
	{"KMF", "174", "Comorian Franc"},
	{"KPW", "408", "North Korean Won"},
	{"KRW", "410", "Won"},
	{"KWD", "414", "Kuwaiti Dinar"},
	{"KYD", "136", "Cayman Islands Dollar"},
	{"KZT", "398", "Tenge"},
	{"LAK", "418", "Lao Kip"},
	{"LBP", "422", "Lebanese Pound"},
	{"LKR", "144", "Sri Lanka Rupee"},
	{"LRD", "430", "Liberian Dollar"},
	{"LSL", "426", "Loti"},
	{"LYD", "434", "Libyan Dinar"},
	{"MAD", "504", "Moroccan Dirham"},
	{"MDL", "498", "Moldovan Leu"},
	{"MGA", "969", "Malagasy Ariary"},
	{"MKD", "807", "Denar"},
	{"MMK", "104", "Kyat"},
	{"MNT", "496", "Tugrik"},
	{"MOP", "446", "Pataca"},
	{"MUR", "480", "Mauritius Rupee"},
	{"MVR", "462", "Rufiyaa"},
	{"MWK", "454", "Malawi Kwacha"},
	{"MXN", "484", "Mexican Peso"},
	{"MXV", "979", "Mexican Unidad de Inversion"},
	{"MYR", "458", "Malaysian Ringgit"},
	{"MZN", "943", "Mozambique Metical"},
	{"NAD", "516", "Namibia Dollar"},
	{"NGN", "566", "Naira"},
	{"NIO", "558", "Cordoba Oro"},
	{"NOK", "578", "Norwegian Krone"},
	{"NPR", "524", "Nepalese Rupee"},
	{"NZD", "554", "New Zealand Dollar"},
	{"OMR", "512", "Rial Omani"},
	{"PAB", "590", "Balboa"},
	{"PEN", "604", "Sol"},
	{"PGK", "598", "Kina"},
	{"PHP", "608", "Philippine Peso"},
	{"PKR", "586", "Pakistan Rupee"},
	{"PLN", "985", "Zloty"},
	{"PYG", "600", "Guarani"},
	{"QAR", "634", "Qatari Rial"},
	{"RON", "946", "Romanian Leu"},
	{"RSD", "941", "Serbian Dinar"},
	{"RUB", "643", "Russian Ruble"},
	{"RWF", "646", "Rwanda Franc"},
	{"SAR", "682", "Saudi Riyal"},
	{"SBD", "090", "Solomon Islands Dollar"},
	{"SCR", "690", "Seychelles Rupee"},
	{"SDG", "938", "Sudanese Pound"},
	{"SEK", "752", "Swedish Krona"},
	{"SGD", "702", "Singapore Dollar"},
	{"SHP", "654", "Saint Helena Pound"},
	{"SLL", "694", "Leone"},
	{"SOS", "706", "Somali Shilling"},
	{"SRD", "968", "Surinam Dollar"},
	{"SSP", "728", "South Sudanese Pound"},
	{"SVC", "222", "El Salvador Colon"},
	{"SYP", "760", "Syrian Pound"},
	{"SZL", "748", "Lilangeni"},
	{"THB", "764", "Baht"},
	{"TJS", "972", "Somoni"},
	{"TMT", "934", "Turkmenistan New Manat"},
	{"TND", "788", "Tunisian Dinar"},
	{"TOP", "776", "Pa'anga"},
	{"TRY", "949", "Turkish Lira"},
	{"TTD", "780", "Trinidad and Tobago Dollar"},
	{"TVD", "", "Tuvalu Dollar"},
	{"TWD", "901", "New Taiwan Dollar"},
	{"TZS", "834", "Tanzanian Shilling"},
	{"UAH", "980", "Hryvnia"},
	{"UGX", "800", "Uganda Shilling"},
	{"USD", "840", "US Dollar"},
	{"USN", "997", "US Dollar (Next day)"},
	{"UYI", "940", "Uruguay Peso en Unidades Indexadas"},
	{"UYU", "858", "Peso Uruguayo"},
	{"UZS", "860", "Uzbekistan Sum"},
	{"VND", "704", "Dong"},
	{"VUV", "548", "Vatu"},
	{"WST", "882", "Tala"},
	{"XAF", "950", "CFA Franc BEAC"},
	{"XAG", "961", "Silver"},
	{"XAU", "959", "Gold"},
	{"XBA", "955", "Bond Markets Unit European Composite Unit (EURCO)"},
	{"XBB", "956", "Bond Markets Unit European Monetary Unit (E.M.U.-6)"},
	{"XBC", "957", "Bond Markets Unit European Unit of Account 9 (E.U.A.-9)"},
	{"XBD", "958", "Bond Markets Unit European Unit of Account 17 (E.U.A.-17)"},
	{"XCD", "951", "East Caribbean Dollar"},
	{"XDR", "960", "SDR (Special Drawing Right)"},
	{"XFO", "", "Gold Franc"},
	{"XFU", "", "UIC Franc"},
	{"XOF", "952", "CFA Franc BCEAO"},
	{"XPD", "964", "Palladium"},
	{"XPF", "953", "CFP Franc"},
	{"XPT", "962", "Platinum"},
	{"XSU", "994", "Sucre"},
	{"XTS", "963", "Codes specifically reserved for testing purposes"},
	{"XUA", "965", "ADB Unit of Account"},
	{"XXX", "999", "The codes assigned for transactions where no currency is involved"},
	{"YER", "886", "Yemeni Rial"},
	{"ZAR", "710", "Rand"},
	{"ZMW", "967", "Zambian Kwacha"},
	{"ZWN", "942", "Zimbabwe Dollar (2006)"},
}

// Obsolete currencies that kept an ISO numeric code. Several reuse the
// numeric of their successor (e.g. ARA/ARP alongside ARS on "032"); the
// last one registered wins GetByNumeric for that numeric.
var obsoleteCurrencies = []isoEntry{
	{"ADP", "020", "Andorran Peseta"},
	{"AFA", "004", "Afghani (1927)"},
	{"ALK", "008", "Old Lek"},
	{"AON", "024", "New Kwanza"},
	{"AOR", "982", "Kwanza Reajustado"},
	{"ARA", "032", "Austral"},
	{"ARP", "032", "Peso Argentino"},
	{"ATS", "040", "Austrian Schilling"},
	{"AZM", "031", "Azerbaijanian Manat (1992)"},
	{"BAD", "070", "Bosnia and Herzegovina Dinar"},
	{"BEF", "056", "Belgian Franc"},
	{"BGL", "100", "Lev (1962)"},
	{"BRC", "076", "Cruzado"},
	{"BRE", "076", "Cruzeiro (1990)"},
	{"BRN", "076", "New Cruzado"},
	{"BRR", "987", "Cruzeiro Real"},
	{"BYR", "974", "Belarusian Ruble (2000)"},
	{"CLE", "152", "Chilean Escudo"},
	{"CSD", "891", "Serbian Dinar (2002)"},
	{"CSK", "200", "Czechoslovak Koruna"},
	{"CYP", "196", "Cyprus Pound"},
	{"DDM", "278", "Mark der DDR"},
	{"DEM", "276", "Deutsche Mark"},
	{"ECS", "218", "Sucre (Ecuador)"},
	{"ECV", "983", "Unidad de Valor Constante"},
	{"EEK", "233", "Estonian Kroon"},
	{"ESA", "996", "Spanish Peseta (Account A)"},
	{"ESB", "995", "Spanish Peseta (Account B)"},
	{"ESP", "020", "Spanish Peseta"},
	{"FIM", "246", "Finnish Markka"},
	{"FRF", "250", "French Franc"},
	{"GHC", "288", "Cedi"},
	{"GRD", "300", "Drachma"},
	{"GWP", "624", "Guinea-Bissau Peso"},
	{"HRD", "191", "Croatian Dinar"},
	{"IEP", "372", "Irish Pound"},
	{"ITL", "380", "Italian Lira"},
	{"LTL", "440", "Lithuanian Litas"},
	{"LUF", "442", "Luxembourg Franc"},
	{"LVL", "428", "Latvian Lats"},
	{"MGF", "450", "Malagasy Franc"},
	{"MLF", "466", "Mali Franc"},
	{"MRO", "478", "Ouguiya (1973)"},
	{"MTL", "470", "Maltese Lira"},
	{"MZM", "508", "Mozambique Metical (1980)"},
	{"NLG", "528", "Netherlands Guilder"},
	{"PEI", "604", "Inti"},
	{"PLZ", "616", "Zloty (1950)"},
	{"PTE", "620", "Portuguese Escudo"},
	{"ROL", "642", "Romanian Leu (1952)"},
	{"RUR", "810", "Russian Ruble (1991)"},
	{"SDD", "736", "Sudanese Dinar"},
	{"SIT", "705", "Tolar"},
	{"SKK", "703", "Slovak Koruna"},
	{"SRG", "740", "Surinam Guilder"},
	{"STD", "678", "Dobra"},
	{"TJR", "762", "Tajik Ruble"},
	{"TMM", "795", "Turkmenistan Manat"},
	{"TPE", "626", "Timor Escudo"},
	{"TRL", "792", "Old Turkish Lira"},
	{"UAK", "804", "Karbovanet"},
	{"USS", "998", "US Dollar (Same day)"},
	{"VEB", "862", "Bolivar (1879)"},
	{"VEF", "937", "Bolivar Fuerte"},
	{"VNN", "704", "Old Dong"},
	{"XEU", "954", "European Currency Unit (E.C.U)"},
	{"YDD", "710", "Yemeni Dinar"},
	{"YUM", "891", "New Dinar"},
	{"YUN", "890", "Yugoslavian Dinar (1966)"},
	{"ZAL", "991", "Financial Rand"},
	{"ZMK", "894", "Zambian Kwacha (1968)"},
	{"ZRN", "180", "New Zaire"},
	{"ZRZ", "180", "Zaire"},
	{"ZWD", "716", "Zimbabwe Dollar (1980)"},
	{"ZWL", "932", "Zimbabwe Dollar (2009)"},
	{"ZWR", "935", "Zimbabwe Dollar (2008)"},
}

// Further obsolete currencies that never had an ISO 4217 numeric code.
var nonISOCurrencies = []string{
	"AOK", "ARL", "ARM", "BAN", "BEC", "BEL", "BGM", "BGO", "BOL", "BOP",
	"BRB", "BRZ", "BUK", "BYB", "CNH", "CNX", "GEK", "GNS", "GQE", "GWE",
	"ILP", "ILR", "ISJ", "KRH", "KRO", "LTT", "LUC", "LUL", "LVR", "MAF",
	"MCF", "MDC", "MKN", "MRU", "MTP", "MVP", "MXP", "MZE", "NIC", "PES",
	"RHD", "SDP", "STN", "SUR", "UGS", "UYP", "UYW", "VES", "XRE", "YUD",
	"YUR",
}

func registerDefaults(r *Registry) {
	// The "no currency" sentinel used by default-constructed Money values.
	r.Register(DefaultCurrencyCode, "999", "Default currency.", []string{})

	for _, e := range isoCurrencies {
		r.Register(e.code, e.numeric, e.name, nil)
	}
	for _, e := range obsoleteCurrencies {
		r.Register(e.code, e.numeric, e.name, nil)
	}
	for _, code := range nonISOCurrencies {
		r.Register(code, "", "", nil)
	}
}
