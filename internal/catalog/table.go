package catalog

// productTable is the curated product database with real ABB Library links.
// The ABB Library site renders search results with JavaScript, so results
// cannot be scraped server-side; this table is the stand-in. Read-only after
// package init.
var productTable = []group{
	{
		keyword: "hpr",
		entries: []Entry{
			{Title: "High Power Rectifiers for primary aluminum smelting", DownloadURL: "https://search.abb.com/library/Download.aspx?DocumentID=3BHS352574&LanguageCode=en&Action=Launch"},
			{Title: "High power rectifiers - Product portfolio overview", DownloadURL: "https://search.abb.com/library/Download.aspx?DocumentID=9AKK107492A3182&LanguageCode=en&Action=Launch"},
			{Title: "High Power Rectifiers for Hydrogen Production", DownloadURL: "https://search.abb.com/library/Download.aspx?DocumentID=9AKK107992A8938&LanguageCode=en&Action=Launch"},
			{Title: "High Power Rectifiers for the Chlor-Alkali industry", DownloadURL: "https://search.abb.com/library/Download.aspx?DocumentID=3BHS352575&LanguageCode=en&Action=Launch"},
			{Title: "Service for high power rectifiers", DownloadURL: "https://search.abb.com/library/Download.aspx?DocumentID=3BHS505186&LanguageCode=en&Action=Launch"},
		},
	},
	{
		keyword: "rectifier",
		entries: []Entry{
			{Title: "MCR1000 Medium Current Rectifier", DownloadURL: "https://search.abb.com/library/Download.aspx?DocumentID=3BHS546772E01&LanguageCode=en&Action=Launch"},
			{Title: "Compact Rectifier – Water Cooled", DownloadURL: "https://search.abb.com/library/Download.aspx?DocumentID=9AKK108467A6325&LanguageCode=en&Action=Launch"},
			{Title: "Compact Rectifier CRW Series", DownloadURL: "https://search.abb.com/library/Download.aspx?DocumentID=9AKK107046A7093&LanguageCode=en&Action=Launch"},
			{Title: "Compact Rectifier CRA Series", DownloadURL: "https://search.abb.com/library/Download.aspx?DocumentID=9AKK107046A7092&LanguageCode=en&Action=Launch"},
		},
	},
	{
		keyword: "mcr",
		entries: []Entry{
			{Title: "MCR1000 Medium Current Rectifier", DownloadURL: "https://search.abb.com/library/Download.aspx?DocumentID=3BHS546772E01&LanguageCode=en&Action=Launch"},
		},
	},
	{
		keyword: "drive",
		entries: []Entry{
			{Title: "ACS880 primary control program firmware manual", DownloadURL: "https://search.abb.com/library/Download.aspx?DocumentID=3AUA0000085967&LanguageCode=en&Action=Launch"},
			{Title: "ACS580 User Manual", DownloadURL: "https://search.abb.com/library/Download.aspx?DocumentID=3AUA0000064448&LanguageCode=en&Action=Launch"},
			{Title: "ACS380 Machinery Drive Manual", DownloadURL: "https://search.abb.com/library/Download.aspx?DocumentID=3AUA0000117344&LanguageCode=en&Action=Launch"},
		},
	},
	{
		keyword: "robot",
		entries: []Entry{
			{Title: "IRB 6700 Product Manual", DownloadURL: "https://search.abb.com/library/Download.aspx?DocumentID=3HAC052982-001&LanguageCode=en&Action=Launch"},
			{Title: "IRC5 Controller Product Manual", DownloadURL: "https://search.abb.com/library/Download.aspx?DocumentID=3HAC050945-001&LanguageCode=en&Action=Launch"},
		},
	},
	{
		keyword: "motor",
		entries: []Entry{
			{Title: "ABB Motors and Generators Catalog", DownloadURL: "https://search.abb.com/library/Download.aspx?DocumentID=9AKK105713A8893&LanguageCode=en&Action=Launch"},
			{Title: "Low voltage motors IEC Technical Catalog", DownloadURL: "https://search.abb.com/library/Download.aspx?DocumentID=9AKK107045A4890&LanguageCode=en&Action=Launch"},
		},
	},
}
