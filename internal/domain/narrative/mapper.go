package narrative

// BuildProfile projects a profile record into its typed view. Total function:
// any named field that is absent or ill-typed in the document is omitted.
func BuildProfile(rec Record, wineName string) Profile {
	doc := rec.Document

	p := Profile{
		WineID:      rec.Key.WineA,
		WineName:    wineName,
		Language:    rec.Key.Language,
		GeneratedAt: rec.CreatedAt,
		Summary:     doc.str("summary"),
		Pairings:    doc.strSlice("foodPairings"),
		Occasions:   doc.strSlice("occasions"),
		FunFacts:    doc.strSlice("funFacts"),
		Raw:         doc,
	}

	if notes := doc.strMap("tastingNotes"); notes != nil {
		p.Tasting = &TastingNotes{
			Appearance: notes["appearance"],
			Aroma:      notes["aroma"],
			Palate:     notes["palate"],
			Finish:     notes["finish"],
		}
	}
	if serving := doc.strMap("servingRecommendations"); serving != nil {
		p.Serving = &ServingRecommendations{
			Temperature: serving["temperature"],
			Decanting:   serving["decanting"],
			GlassType:   serving["glassType"],
			StorageTips: serving["storageTips"],
		}
	}

	return p
}

// BuildComparison projects a comparison record into its typed view, with the
// same tolerance rules as BuildProfile.
func BuildComparison(rec Record, wineAName, wineBName string) Comparison {
	doc := rec.Document

	c := Comparison{
		WineAID:         rec.Key.WineA,
		WineAName:       wineAName,
		WineBID:         rec.Key.WineB,
		WineBName:       wineBName,
		Language:        rec.Key.Language,
		GeneratedAt:     rec.CreatedAt,
		Summary:         doc.str("summary"),
		Similarities:    doc.strSlice("similarities"),
		Differences:     doc.strSlice("differences"),
		ValueAssessment: doc.str("valueAssessment"),
		Raw:             doc,
	}

	if attrs := doc.objMap("attributeComparison"); attrs != nil {
		c.Attributes = &AttributeComparison{
			Appearance: attributeFrom(attrs, "appearance"),
			Aroma:      attributeFrom(attrs, "aroma"),
			Palate:     attributeFrom(attrs, "palate"),
			Finish:     attributeFrom(attrs, "finish"),
			Body:       attributeFrom(attrs, "body"),
			Acidity:    attributeFrom(attrs, "acidity"),
			Tannins:    attributeFrom(attrs, "tannins"),
		}
	}
	if pairings := doc.objMap("foodPairings"); pairings != nil {
		c.Pairings = &PairingComparison{
			WineA:  toStrSlice(pairings["wineA"]),
			WineB:  toStrSlice(pairings["wineB"]),
			Shared: toStrSlice(pairings["shared"]),
		}
	}
	if occasions := doc.objMap("occasions"); occasions != nil {
		c.Occasions = &OccasionComparison{
			WineA: toStrSlice(occasions["wineA"]),
			WineB: toStrSlice(occasions["wineB"]),
		}
	}
	if rm := doc.strMap("recommendation"); rm != nil {
		c.Recommendation = &Recommendation{
			ChooseWineAIf: rm["chooseWineAIf"],
			ChooseWineBIf: rm["chooseWineBIf"],
			OverallNote:   rm["overallNote"],
		}
	}

	return c
}

func attributeFrom(attrs map[string]any, key string) *Attribute {
	raw, ok := attrs[key].(map[string]any)
	if !ok {
		return nil
	}
	a := &Attribute{}
	if s, ok := raw["wineA"].(string); ok {
		a.WineA = s
	}
	if s, ok := raw["wineB"].(string); ok {
		a.WineB = s
	}
	if s, ok := raw["comparison"].(string); ok {
		a.Comparison = s
	}
	return a
}
