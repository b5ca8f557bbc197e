package instruct

// categories is the fixed table mapping spoken file categories to extension
// sets. Lookups go through lookupCategory so synonyms and singular forms
// resolve to the same set.
var categories = map[string][]string{
	"images":        {".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tiff"},
	"documents":     {".pdf", ".docx", ".doc", ".txt"},
	"code":          {".java", ".py", ".go", ".js", ".c", ".cpp"},
	"videos":        {".mp4", ".mov", ".avi", ".mkv"},
	"music":         {".mp3", ".wav", ".flac", ".aac", ".ogg"},
	"archives":      {".zip", ".tar", ".gz", ".rar", ".7z"},
	"spreadsheets":  {".xls", ".xlsx", ".csv"},
	"presentations": {".ppt", ".pptx"},
	"installers":    {".exe", ".msi", ".dmg", ".deb", ".rpm"},
}

// categorySynonyms maps casual phrasing onto canonical category names.
var categorySynonyms = map[string]string{
	"image":         "images",
	"picture":       "images",
	"pictures":      "images",
	"photo":         "images",
	"photos":        "images",
	"pic":           "images",
	"pics":          "images",
	"document":      "documents",
	"doc":           "documents",
	"docs":          "documents",
	"video":         "videos",
	"movie":         "videos",
	"movies":        "videos",
	"song":          "music",
	"songs":         "music",
	"audio":         "music",
	"archive":       "archives",
	"zips":          "archives",
	"spreadsheet":   "spreadsheets",
	"presentation":  "presentations",
	"slides":        "presentations",
	"installer":     "installers",
	"app":           "installers",
	"apps":          "installers",
	"program":       "installers",
	"programs":      "installers",
	"script":        "code",
	"scripts":       "code",
}

// extensionAliases resolves bare extension mentions ("pdfs", "png files")
// that are not full categories.
var extensionAliases = map[string]string{
	"png":  ".png",
	"jpg":  ".jpg",
	"jpeg": ".jpeg",
	"gif":  ".gif",
	"pdf":  ".pdf",
	"docx": ".docx",
	"txt":  ".txt",
	"csv":  ".csv",
	"zip":  ".zip",
	"mp3":  ".mp3",
	"mp4":  ".mp4",
	"mov":  ".mov",
	"py":   ".py",
	"java": ".java",
	"exe":  ".exe",
	"iso":  ".iso",
}

// lookupCategory resolves a token to a category extension set, trying the
// token itself, its synonym, and its plural form.
func lookupCategory(token string) ([]string, bool) {
	if exts, ok := categories[token]; ok {
		return exts, true
	}
	if canonical, ok := categorySynonyms[token]; ok {
		return categories[canonical], true
	}
	if exts, ok := categories[token+"s"]; ok {
		return exts, true
	}
	return nil, false
}

// lookupExtension resolves an explicit extension mention, with or without
// the leading dot, singular or plural ("pdf", ".pdf", "pdfs").
func lookupExtension(token string) (string, bool) {
	if len(token) > 1 && token[0] == '.' {
		return token, true
	}
	if ext, ok := extensionAliases[token]; ok {
		return ext, true
	}
	if trimmed, ok := trimPlural(token); ok {
		if ext, ok := extensionAliases[trimmed]; ok {
			return ext, true
		}
	}
	return "", false
}

// trimPlural strips a trailing plural "s" ("screenshots" -> "screenshot").
func trimPlural(token string) (string, bool) {
	if len(token) > 3 && token[len(token)-1] == 's' && token[len(token)-2] != 's' {
		return token[:len(token)-1], true
	}
	return token, false
}
