package synonym

// NewBuiltinThesaurus returns the built-in pharmaceutical thesaurus: common
// Brazilian active-principle names mapped to international nonproprietary
// names and widespread brand equivalents. The resource crosses a language
// boundary (English synonyms for Portuguese terms), a documented
// approximation of the pipeline.
func NewBuiltinThesaurus(key KeyFunc) *StaticThesaurus {
	return NewStaticThesaurus(builtinEntries(), key)
}

func builtinEntries() map[string][]string {
	return map[string][]string{
		"dipirona":                {"metamizol", "metamizole", "dipyrone", "novalgina"},
		"paracetamol":             {"acetaminophen", "acetaminofeno", "tylenol"},
		"ácido acetilsalicílico":  {"aas", "aspirina", "aspirin"},
		"ibuprofeno":              {"ibuprofen", "advil"},
		"diclofenaco":             {"diclofenac", "voltaren"},
		"nimesulida":              {"nimesulide"},
		"amoxicilina":             {"amoxicillin", "amoxil"},
		"azitromicina":            {"azithromycin", "zithromax"},
		"cefalexina":              {"cephalexin", "keflex"},
		"ciprofloxacino":          {"ciprofloxacin", "cipro"},
		"omeprazol":               {"omeprazole", "prilosec"},
		"pantoprazol":             {"pantoprazole"},
		"ranitidina":              {"ranitidine", "zantac"},
		"losartana":               {"losartan", "cozaar"},
		"enalapril":               {"renitec", "vasotec"},
		"captopril":               {"capoten"},
		"atenolol":                {"tenormin"},
		"propranolol":             {"inderal"},
		"furosemida":              {"furosemide", "lasix"},
		"hidroclorotiazida":       {"hydrochlorothiazide", "hctz"},
		"sinvastatina":            {"simvastatin", "zocor"},
		"atorvastatina":           {"atorvastatin", "lipitor"},
		"metformina":              {"metformin", "glifage", "glucophage"},
		"glibenclamida":           {"glibenclamide", "glyburide"},
		"levotiroxina":            {"levothyroxine", "synthroid", "puran"},
		"prednisona":              {"prednisone", "meticorten"},
		"dexametasona":            {"dexamethasone", "decadron"},
		"loratadina":              {"loratadine", "claritin"},
		"dexclorfeniramina":       {"dexchlorpheniramine", "polaramine"},
		"salbutamol":              {"albuterol", "aerolin", "ventolin"},
		"budesonida":              {"budesonide"},
		"fluoxetina":              {"fluoxetine", "prozac"},
		"sertralina":              {"sertraline", "zoloft"},
		"diazepam":                {"valium"},
		"clonazepam":              {"rivotril", "klonopin"},
		"fluconazol":              {"fluconazole", "diflucan"},
		"cetoconazol":             {"ketoconazole", "nizoral"},
		"domperidona":             {"domperidone", "motilium"},
		"ondansetrona":            {"ondansetron", "zofran"},
		"sulfato ferroso":         {"ferrous sulfate", "iron sulfate"},
		"vitamina c":              {"ácido ascórbico", "ascorbic acid"},
		"ácido fólico":            {"folic acid", "folacin"},
	}
}
