package money

import "slices"

// Bundled territory-to-currency history. Each row associates a currency
// code with a territory for a date range; an empty end date means the
// association is current. Currency.CountryCodes derives its territory set
// from the current rows of this table.

type territoryCurrency struct {
	code   string // currency code
	from   string // ISO date the association started, "" if unrecorded
	to     string // ISO date the association ended, "" while current
	tender bool   // legal tender, as opposed to a funds/accounting unit
}

var territoryCurrencies = map[string][]territoryCurrency{
	"AD": {
		{"ESP", "", "2002-02-28", true},
		{"FRF", "", "2002-02-17", true},
		{"ADP", "", "2002-02-28", true},
		{"EUR", "1999-01-01", "", true},
	},
	"AE": {{"AED", "1973-05-19", "", true}},
	"AF": {
		{"AFA", "1925-01-01", "2002-12-31", true},
		{"AFN", "2002-10-07", "", true},
	},
	"AG": {{"XCD", "1965-10-06", "", true}},
	"AI": {{"XCD", "1965-10-06", "", true}},
	"AL": {
		{"ALK", "1946-11-01", "1965-08-15", true},
		{"ALL", "1965-08-16", "", true},
	},
	"AM": {{"AMD", "1993-11-22", "", true}},
	"AO": {
		{"AOK", "1977-01-08", "1991-03-01", true},
		{"AON", "1990-09-25", "2000-02-01", true},
		{"AOR", "1995-07-01", "2000-02-01", true},
		{"AOA", "1999-12-01", "", true},
	},
	"AR": {
		{"ARM", "", "1970-01-01", true},
		{"ARL", "1970-01-01", "1983-06-01", true},
		{"ARP", "1983-06-01", "1985-06-14", true},
		{"ARA", "1985-06-14", "1992-01-01", true},
		{"ARS", "1992-01-01", "", true},
	},
	"AS": {{"USD", "1904-07-16", "", true}},
	"AT": {
		{"ATS", "1947-12-04", "2002-02-28", true},
		{"EUR", "1999-01-01", "", true},
	},
	"AU": {{"AUD", "1966-02-14", "", true}},
	"AW": {{"AWG", "1986-01-01", "", true}},
	"AX": {{"EUR", "1999-01-01", "", true}},
	"AZ": {
		{"AZM", "1992-08-15", "2006-12-31", true},
		{"AZN", "2006-01-01", "", true},
	},
	"BA": {
		{"BAD", "1992-07-01", "1998-06-21", true},
		{"BAM", "1998-06-22", "", true},
	},
	"BB": {{"BBD", "1973-12-03", "", true}},
	"BD": {{"BDT", "1972-01-01", "", true}},
	"BE": {
		{"BEF", "1926-10-25", "2002-02-28", true},
		{"BEC", "", "1990-03-05", false},
		{"BEL", "", "1990-03-05", false},
		{"EUR", "1999-01-01", "", true},
	},
	"BF": {{"XOF", "1984-08-04", "", true}},
	"BG": {
		{"BGO", "", "1952-05-12", true},
		{"BGM", "1952-05-12", "1962-01-01", true},
		{"BGL", "1962-01-01", "1999-07-05", true},
		{"BGN", "1999-07-05", "", true},
	},
	"BH": {{"BHD", "1965-10-16", "", true}},
	"BI": {{"BIF", "1964-01-01", "", true}},
	"BJ": {{"XOF", "1975-11-30", "", true}},
	"BL": {{"EUR", "1999-01-01", "", true}},
	"BM": {{"BMD", "1970-02-06", "", true}},
	"BN": {{"BND", "1967-06-12", "", true}},
	"BO": {
		{"BOL", "", "1963-01-01", true},
		{"BOP", "1963-01-01", "1987-01-01", true},
		{"BOB", "1987-01-01", "", true},
		{"BOV", "1994-01-01", "", false},
	},
	"BQ": {{"USD", "2011-01-01", "", true}},
	"BR": {
		{"BRZ", "1942-11-01", "1967-02-13", true},
		{"BRB", "1967-02-13", "1986-02-28", true},
		{"BRC", "1986-02-28", "1989-01-15", true},
		{"BRN", "1989-01-15", "1990-03-16", true},
		{"BRE", "1990-03-16", "1993-08-01", true},
		{"BRR", "1993-08-01", "1994-07-01", true},
		{"BRL", "1994-07-01", "", true},
	},
	"BS": {{"BSD", "1966-05-25", "", true}},
	"BT": {
		{"INR", "1907-01-01", "", true},
		{"BTN", "1974-04-16", "", true},
	},
	"BV": {{"NOK", "1905-06-07", "", true}},
	"BW": {{"BWP", "1976-08-23", "", true}},
	"BY": {
		{"BYB", "1992-05-25", "2000-12-31", true},
		{"BYR", "2000-01-01", "2016-12-31", true},
		{"BYN", "2016-07-01", "", true},
	},
	"BZ": {{"BZD", "1974-01-01", "", true}},
	"CA": {{"CAD", "1871-07-01", "", true}},
	"CC": {{"AUD", "1966-02-14", "", true}},
	"CD": {
		{"ZRZ", "1971-10-27", "1993-11-01", true},
		{"ZRN", "1993-11-01", "1998-07-01", true},
		{"CDF", "1998-07-01", "", true},
	},
	"CF": {{"XAF", "1993-01-01", "", true}},
	"CG": {{"XAF", "1993-01-01", "", true}},
	"CH": {
		{"CHF", "1799-03-17", "", true},
		{"CHE", "2004-05-01", "", false},
		{"CHW", "2004-05-01", "", false},
	},
	"CI": {{"XOF", "1958-12-04", "", true}},
	"CK": {{"NZD", "1967-07-10", "", true}},
	"CL": {
		{"CLE", "1960-01-01", "1975-09-29", true},
		{"CLP", "1975-09-29", "", true},
		{"CLF", "1990-01-01", "", false},
	},
	"CM": {{"XAF", "1973-04-01", "", true}},
	"CN": {{"CNY", "1953-03-01", "", true}},
	"CO": {
		{"COP", "1905-01-01", "", true},
		{"COU", "1999-05-13", "", false},
	},
	"CR": {{"CRC", "1896-10-26", "", true}},
	"CU": {
		{"CUP", "1859-01-01", "", true},
		{"CUC", "1994-01-01", "2021-12-31", true},
	},
	"CV": {{"CVE", "1914-01-01", "", true}},
	"CW": {{"ANG", "2010-10-10", "", true}},
	"CX": {{"AUD", "1966-02-14", "", true}},
	"CY": {
		{"CYP", "1914-09-10", "2008-01-31", true},
		{"EUR", "2008-01-01", "", true},
	},
	"CZ": {
		{"CSK", "1953-06-01", "1993-03-01", true},
		{"CZK", "1993-01-01", "", true},
	},
	"DE": {
		{"DEM", "1948-06-20", "2002-02-28", true},
		{"EUR", "1999-01-01", "", true},
	},
	"DJ": {{"DJF", "1977-06-27", "", true}},
	"DK": {{"DKK", "1873-05-27", "", true}},
	"DM": {{"XCD", "1965-10-06", "", true}},
	"DO": {{"DOP", "1947-10-01", "", true}},
	"DZ": {{"DZD", "1964-04-01", "", true}},
	"EC": {
		{"ECS", "1884-04-01", "2000-10-02", true},
		{"ECV", "1993-05-23", "2000-01-09", false},
		{"USD", "2000-10-02", "", true},
	},
	"EE": {
		{"EEK", "1992-06-21", "2010-12-31", true},
		{"EUR", "2011-01-01", "", true},
	},
	"EG": {{"EGP", "1885-11-14", "", true}},
	"EH": {{"MAD", "1976-02-26", "", true}},
	"ER": {{"ERN", "1997-11-08", "", true}},
	"ES": {
		{"ESP", "1868-10-19", "2002-02-28", true},
		{"ESA", "1978-01-01", "1981-12-31", false},
		{"ESB", "1994-01-01", "1998-12-31", false},
		{"EUR", "1999-01-01", "", true},
	},
	"ET": {{"ETB", "1976-09-15", "", true}},
	"FI": {
		{"FIM", "1963-01-01", "2002-02-28", true},
		{"EUR", "1999-01-01", "", true},
	},
	"FJ": {{"FJD", "1969-01-13", "", true}},
	"FK": {{"FKP", "1901-01-01", "", true}},
	"FM": {{"USD", "1944-01-01", "", true}},
	"FO": {{"DKK", "1948-01-01", "", true}},
	"FR": {
		{"FRF", "1960-01-01", "2002-02-17", true},
		{"EUR", "1999-01-01", "", true},
	},
	"GA": {{"XAF", "1993-01-01", "", true}},
	"GB": {{"GBP", "1694-07-27", "", true}},
	"GD": {{"XCD", "1967-02-27", "", true}},
	"GE": {
		{"GEK", "1993-04-05", "1995-09-25", true},
		{"GEL", "1995-09-23", "", true},
	},
	"GF": {{"EUR", "1999-01-01", "", true}},
	"GG": {{"GBP", "1830-01-01", "", true}},
	"GH": {
		{"GHC", "1979-03-09", "2007-12-31", true},
		{"GHS", "2007-07-03", "", true},
	},
	"GI": {{"GIP", "1713-01-01", "", true}},
	"GL": {{"DKK", "1873-05-27", "", true}},
	"GM": {{"GMD", "1971-07-01", "", true}},
	"GN": {
		{"GNS", "1972-10-02", "1986-01-06", true},
		{"GNF", "1986-01-06", "", true},
	},
	"GP": {{"EUR", "1999-01-01", "", true}},
	"GQ": {
		{"GQE", "1975-07-07", "1986-06-01", true},
		{"XAF", "1993-01-01", "", true},
	},
	"GR": {
		{"GRD", "1954-05-01", "2002-02-28", true},
		{"EUR", "2001-01-01", "", true},
	},
	"GS": {{"GBP", "1908-01-01", "", true}},
	"GT": {{"GTQ", "1925-05-27", "", true}},
	"GU": {{"USD", "1944-08-21", "", true}},
	"GW": {
		{"GWE", "1914-01-01", "1976-02-28", true},
		{"GWP", "1976-02-28", "1997-03-31", true},
		{"XOF", "1997-03-31", "", true},
	},
	"GY": {{"GYD", "1966-05-26", "", true}},
	"HK": {{"HKD", "1895-02-02", "", true}},
	"HM": {{"AUD", "1967-02-16", "", true}},
	"HN": {{"HNL", "1926-04-03", "", true}},
	"HR": {
		{"HRD", "1991-12-23", "1995-01-01", true},
		{"HRK", "1994-05-30", "2022-12-31", true},
		{"EUR", "2023-01-01", "", true},
	},
	"HT": {
		{"HTG", "1872-08-26", "", true},
		{"USD", "1915-01-01", "", true},
	},
	"HU": {{"HUF", "1946-08-01", "", true}},
	"ID": {{"IDR", "1965-12-13", "", true}},
	"IE": {
		{"IEP", "1938-01-01", "2002-02-09", true},
		{"EUR", "1999-01-01", "", true},
	},
	"IL": {
		{"ILP", "1948-08-16", "1980-02-22", true},
		{"ILR", "1980-02-22", "1985-09-04", true},
		{"ILS", "1985-09-04", "", true},
	},
	"IM": {
		{"GBP", "1840-01-01", "", true},
		{"IMP", "1961-07-06", "", true},
	},
	"IN": {{"INR", "1835-08-17", "", true}},
	"IO": {{"USD", "1965-11-08", "", true}},
	"IQ": {{"IQD", "1931-04-19", "", true}},
	"IR": {{"IRR", "1932-03-29", "", true}},
	"IS": {
		{"ISJ", "1918-12-01", "1981-01-01", true},
		{"ISK", "1981-01-01", "", true},
	},
	"IT": {
		{"ITL", "1862-08-24", "2002-02-28", true},
		{"EUR", "1999-01-01", "", true},
	},
	"JE": {{"GBP", "1837-01-01", "", true}},
	"JM": {{"JMD", "1969-09-08", "", true}},
	"JO": {{"JOD", "1950-07-01", "", true}},
	"JP": {{"JPY", "1871-06-27", "", true}},
	"KE": {{"KES", "1966-09-14", "", true}},
	"KG": {{"KGS", "1993-05-10", "", true}},
	"KH": {{"KHR", "1980-03-20", "", true}},
	"KI": {{"AUD", "1966-02-14", "", true}},
	"KM": {{"KMF", "1975-07-06", "", true}},
	"KN": {{"XCD", "1965-10-06", "", true}},
	"KP": {{"KPW", "1959-04-17", "", true}},
	"KR": {
		{"KRO", "1945-08-15", "1953-02-15", true},
		{"KRH", "1953-02-15", "1962-06-10", true},
		{"KRW", "1962-06-10", "", true},
	},
	"KW": {{"KWD", "1961-04-01", "", true}},
	"KY": {{"KYD", "1972-01-01", "", true}},
	"KZ": {{"KZT", "1993-11-05", "", true}},
	"LA": {{"LAK", "1979-12-10", "", true}},
	"LB": {{"LBP", "1948-02-02", "", true}},
	"LC": {{"XCD", "1965-10-06", "", true}},
	"LI": {{"CHF", "1921-02-01", "", true}},
	"LK": {{"LKR", "1978-05-22", "", true}},
	"LR": {{"LRD", "1944-01-01", "", true}},
	"LS": {
		{"ZAR", "1961-02-14", "", true},
		{"LSL", "1980-01-22", "", true},
	},
	"LT": {
		{"LTT", "1991-10-01", "1993-06-25", true},
		{"LTL", "1993-06-25", "2014-12-31", true},
		{"EUR", "2015-01-01", "", true},
	},
	"LU": {
		{"LUF", "1944-09-04", "2002-02-28", true},
		{"LUC", "", "1990-03-05", false},
		{"LUL", "", "1990-03-05", false},
		{"EUR", "1999-01-01", "", true},
	},
	"LV": {
		{"LVR", "1992-05-07", "1993-10-17", true},
		{"LVL", "1993-06-28", "2013-12-31", true},
		{"EUR", "2014-01-01", "", true},
	},
	"LY": {{"LYD", "1971-09-01", "", true}},
	"MA": {
		{"MAF", "1921-01-01", "1959-10-17", true},
		{"MAD", "1959-10-17", "", true},
	},
	"MC": {
		{"FRF", "1960-01-01", "2002-02-17", true},
		{"MCF", "1962-05-24", "2002-02-17", true},
		{"EUR", "1999-01-01", "", true},
	},
	"MD": {
		{"MDC", "1992-06-01", "1993-11-29", true},
		{"MDL", "1993-11-29", "", true},
	},
	"ME": {{"EUR", "2002-01-01", "", true}},
	"MF": {{"EUR", "1999-01-01", "", true}},
	"MG": {
		{"MGF", "1963-07-01", "2004-12-31", true},
		{"MGA", "1983-11-01", "", true},
	},
	"MH": {{"USD", "1944-01-01", "", true}},
	"MK": {
		{"MKN", "1992-04-26", "1993-05-20", true},
		{"MKD", "1993-05-20", "", true},
	},
	"ML": {
		{"MLF", "1962-07-02", "1984-08-31", true},
		{"XOF", "1984-06-01", "", true},
	},
	"MM": {
		{"BUK", "1952-07-01", "1989-06-18", true},
		{"MMK", "1989-06-18", "", true},
	},
	"MN": {{"MNT", "1925-12-09", "", true}},
	"MO": {{"MOP", "1901-01-01", "", true}},
	"MP": {{"USD", "1944-01-01", "", true}},
	"MQ": {{"EUR", "1999-01-01", "", true}},
	"MR": {
		{"MRO", "1973-06-29", "2018-06-30", true},
		{"MRU", "2018-01-01", "", true},
	},
	"MS": {{"XCD", "1967-02-27", "", true}},
	"MT": {
		{"MTP", "1914-08-13", "1968-06-01", true},
		{"MTL", "1968-06-01", "2008-01-31", true},
		{"EUR", "2008-01-01", "", true},
	},
	"MU": {{"MUR", "1934-04-01", "", true}},
	"MV": {
		{"MVP", "1947-01-01", "1981-07-01", true},
		{"MVR", "1981-07-01", "", true},
	},
	"MW": {{"MWK", "1971-02-15", "", true}},
	"MX": {
		{"MXP", "1822-01-01", "1992-12-31", true},
		{"MXN", "1993-01-01", "", true},
		{"MXV", "1995-04-04", "", false},
	},
	"MY": {{"MYR", "1963-09-16", "", true}},
	"MZ": {
		{"MZE", "1975-06-25", "1980-06-16", true},
		{"MZM", "1980-06-16", "2006-12-31", true},
		{"MZN", "2006-07-01", "", true},
	},
	"NA": {
		{"ZAR", "1961-02-14", "", true},
		{"NAD", "1993-01-01", "", true},
	},
	"NC": {{"XPF", "1985-01-01", "", true}},
	"NE": {{"XOF", "1958-12-19", "", true}},
	"NF": {{"AUD", "1966-02-14", "", true}},
	"NG": {{"NGN", "1973-01-01", "", true}},
	"NI": {
		{"NIC", "1988-02-15", "1991-04-30", true},
		{"NIO", "1991-04-30", "", true},
	},
	"NL": {
		{"NLG", "1813-01-01", "2002-01-28", true},
		{"EUR", "1999-01-01", "", true},
	},
	"NO": {{"NOK", "1905-06-07", "", true}},
	"NP": {{"NPR", "1933-01-01", "", true}},
	"NR": {{"AUD", "1966-02-14", "", true}},
	"NU": {{"NZD", "1967-07-10", "", true}},
	"NZ": {{"NZD", "1967-07-10", "", true}},
	"OM": {{"OMR", "1972-11-11", "", true}},
	"PA": {
		{"PAB", "1903-11-04", "", true},
		{"USD", "1903-11-18", "", true},
	},
	"PE": {
		{"PES", "1863-02-14", "1985-02-01", true},
		{"PEI", "1985-02-01", "1991-07-01", true},
		{"PEN", "1991-07-01", "", true},
	},
	"PF": {{"XPF", "1945-12-26", "", true}},
	"PG": {{"PGK", "1975-09-16", "", true}},
	"PH": {{"PHP", "1946-07-04", "", true}},
	"PK": {{"PKR", "1948-04-01", "", true}},
	"PL": {
		{"PLZ", "1950-10-30", "1994-12-31", true},
		{"PLN", "1995-01-01", "", true},
	},
	"PM": {{"EUR", "1999-01-01", "", true}},
	"PN": {{"NZD", "1969-01-13", "", true}},
	"PR": {{"USD", "1898-12-10", "", true}},
	"PS": {
		{"ILS", "1985-09-04", "", true},
		{"JOD", "1950-07-01", "", true},
	},
	"PT": {
		{"PTE", "1911-05-22", "2002-02-28", true},
		{"EUR", "1999-01-01", "", true},
	},
	"PW": {{"USD", "1944-01-01", "", true}},
	"PY": {{"PYG", "1943-11-01", "", true}},
	"QA": {{"QAR", "1973-05-19", "", true}},
	"RE": {{"EUR", "1999-01-01", "", true}},
	"RO": {
		{"ROL", "1952-01-28", "2006-12-31", true},
		{"RON", "2005-07-01", "", true},
	},
	"RS": {
		{"YUM", "1994-01-24", "2002-05-15", true},
		{"CSD", "2002-05-15", "2006-10-25", true},
		{"RSD", "2006-10-25", "", true},
	},
	"RU": {
		{"SUR", "1961-01-01", "1991-12-25", true},
		{"RUR", "1991-12-25", "1998-12-31", true},
		{"RUB", "1999-01-01", "", true},
	},
	"RW": {{"RWF", "1964-05-19", "", true}},
	"SA": {{"SAR", "1952-10-22", "", true}},
	"SB": {{"SBD", "1977-10-24", "", true}},
	"SC": {{"SCR", "1914-11-01", "", true}},
	"SD": {
		{"SDP", "1957-04-08", "1998-06-01", true},
		{"SDD", "1992-06-08", "2007-06-30", true},
		{"SDG", "2007-01-10", "", true},
	},
	"SE": {{"SEK", "1873-05-27", "", true}},
	"SG": {{"SGD", "1967-06-12", "", true}},
	"SH": {{"SHP", "1917-02-15", "", true}},
	"SI": {
		{"SIT", "1991-10-08", "2006-12-31", true},
		{"EUR", "2007-01-01", "", true},
	},
	"SJ": {{"NOK", "1905-06-07", "", true}},
	"SK": {
		{"SKK", "1992-12-31", "2008-12-31", true},
		{"EUR", "2009-01-01", "", true},
	},
	"SL": {{"SLL", "1964-08-04", "", true}},
	"SM": {
		{"ITL", "1865-12-23", "2002-02-28", true},
		{"EUR", "1999-01-01", "", true},
	},
	"SN": {{"XOF", "1959-04-04", "", true}},
	"SO": {{"SOS", "1960-07-01", "", true}},
	"SR": {
		{"SRG", "1940-05-10", "2003-12-31", true},
		{"SRD", "2004-01-01", "", true},
	},
	"SS": {{"SSP", "2011-07-18", "", true}},
	"ST": {
		{"STD", "1977-09-08", "2017-12-31", true},
		{"STN", "2018-01-01", "", true},
	},
	"SV": {
		{"SVC", "1919-11-11", "", true},
		{"USD", "2001-01-01", "", true},
	},
	"SX": {{"ANG", "2010-10-10", "", true}},
	"SY": {{"SYP", "1948-01-01", "", true}},
	"SZ": {{"SZL", "1974-09-06", "", true}},
	"TC": {{"USD", "1969-09-08", "", true}},
	"TD": {{"XAF", "1993-01-01", "", true}},
	"TF": {{"EUR", "1999-01-01", "", true}},
	"TG": {{"XOF", "1958-11-28", "", true}},
	"TH": {{"THB", "1928-04-15", "", true}},
	"TJ": {
		{"TJR", "1995-05-10", "2000-10-25", true},
		{"TJS", "2000-10-26", "", true},
	},
	"TK": {{"NZD", "1967-07-10", "", true}},
	"TL": {
		{"TPE", "1959-01-02", "2002-11-20", true},
		{"USD", "1999-10-20", "", true},
	},
	"TM": {
		{"TMM", "1993-11-01", "2008-12-31", true},
		{"TMT", "2009-01-01", "", true},
	},
	"TN": {{"TND", "1958-11-01", "", true}},
	"TO": {{"TOP", "1966-02-14", "", true}},
	"TR": {
		{"TRL", "1922-11-01", "2005-12-31", true},
		{"TRY", "2005-01-01", "", true},
	},
	"TT": {{"TTD", "1964-01-01", "", true}},
	"TV": {
		{"AUD", "1966-02-14", "", true},
		{"TVD", "1976-01-01", "", true},
	},
	"TW": {{"TWD", "1949-06-15", "", true}},
	"TZ": {{"TZS", "1966-06-14", "", true}},
	"UA": {
		{"UAK", "1992-01-10", "1996-09-01", true},
		{"UAH", "1996-09-02", "", true},
	},
	"UG": {
		{"UGS", "1966-08-15", "1987-05-15", true},
		{"UGX", "1987-05-15", "", true},
	},
	"UM": {{"USD", "1944-01-01", "", true}},
	"US": {
		{"USD", "1792-01-01", "", true},
		{"USN", "1997-01-01", "", false},
		{"USS", "1997-01-01", "2014-03-28", false},
	},
	"UY": {
		{"UYP", "1975-07-01", "1993-03-01", true},
		{"UYU", "1993-03-01", "", true},
		{"UYI", "2004-06-02", "", false},
		{"UYW", "2018-08-29", "", false},
	},
	"UZ": {{"UZS", "1994-07-01", "", true}},
	"VA": {
		{"ITL", "1870-10-02", "2002-02-28", true},
		{"EUR", "1999-01-01", "", true},
	},
	"VC": {{"XCD", "1965-10-06", "", true}},
	"VE": {
		{"VEB", "1871-05-11", "2008-01-01", true},
		{"VEF", "2008-01-01", "2018-08-20", true},
		{"VES", "2018-08-20", "", true},
	},
	"VG": {{"USD", "1833-01-01", "", true}},
	"VI": {{"USD", "1837-01-01", "", true}},
	"VN": {
		{"VNN", "1978-05-03", "1985-09-14", true},
		{"VND", "1985-09-14", "", true},
	},
	"VU": {{"VUV", "1981-01-01", "", true}},
	"WF": {{"XPF", "1961-07-30", "", true}},
	"WS": {{"WST", "1967-07-10", "", true}},
	"YE": {
		{"YDD", "1965-04-01", "1996-06-11", true},
		{"YER", "1990-05-22", "", true},
	},
	"YT": {{"EUR", "1999-01-01", "", true}},
	"ZA": {
		{"ZAL", "1985-09-01", "1995-03-13", false},
		{"ZAR", "1961-02-14", "", true},
	},
	"ZM": {
		{"ZMK", "1968-01-16", "2013-01-01", true},
		{"ZMW", "2013-01-01", "", true},
	},
	"ZW": {
		{"ZWD", "1980-04-18", "2008-08-01", true},
		{"ZWR", "2008-08-01", "2009-02-02", true},
		{"ZWL", "2009-02-02", "2009-04-12", true},
		{"USD", "2009-04-12", "", true},
	},
	"ZZ": {{"XXX", "", "", true}},
}

// currentTerritoriesFor returns the territories whose current (open-ended)
// association names the given currency code, sorted.
func currentTerritoriesFor(code string) []string {
	var out []string
	for territory, history := range territoryCurrencies {
		for _, tc := range history {
			if tc.to == "" && tc.code == code {
				out = append(out, territory)
				break
			}
		}
	}
	slices.Sort(out)
	return out
}
