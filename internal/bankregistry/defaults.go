package bankregistry

// Default returns the curated production registry of destination banks and
// their branch BICs. Operators can replace it with a YAML file via
// configuration; the built-in copy keeps the tool usable with no setup.
func Default() *Registry {
	return New([]Entry{
		{Name: "اسيا الاسلامي", BICs: []string{"UCFXIQBA005"}},
		{Name: "الطيف الاسلامي", BICs: []string{"AINIIQBA001", "AINIIQBA017"}},
		{Name: "الشرق الاوسط", BICs: []string{"IMEBIQBA781"}},
		{Name: "العراقي الاسلامي", BICs: []string{"IRIBIQBA724"}},
		{Name: "الراجح", BICs: []string{"RJHBIQBA731"}},
		{Name: "الرشيد", BICs: []string{"RDBAIQB1046"}},
		{Name: "الرافدين", BICs: []string{"RAFBIQB1098"}},
		{Name: "التنمية", BICs: []string{
			"IDBQIQBA001", "IDBQIQBA011", "IDBQIQBA010", "IDBQIQBA013", "IDBQIQBA021", "IDBQIQBA022",
		}},
		{Name: "الأهلي العراقي", BICs: []string{
			"NBIQIQBA850", "NBIQIQBA853", "NBIQIQBA863", "NBIQIQBA859", "NBIQIQBA864", "NBIQIQBA865",
		}},
		{Name: "النهرين", BICs: []string{"NIBIIQBA001"}},
		{Name: "الزراعي", BICs: []string{"AGRIIQBA721"}},
		{Name: "اشور", BICs: []string{"AIBIIQBA994", "AIBIIQBA988", "AIBIIQBA995"}},
		{Name: "التجارة العراقي", BICs: []string{
			"TRIQIQBA979", "TRIQIQBA976", "TRIQIQBA982", "TRIQIQBA983", "TRIQIQBA991",
			"TRIQIQBA986", "TRIQIQBA995", "TRIQIQBA993", "TRIQIQBA997",
		}},
	})
}
