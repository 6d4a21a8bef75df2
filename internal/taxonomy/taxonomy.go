package taxonomy

import "strings"

// Category is one traffic-boost event type
type Category struct {
	ID          string   `yaml:"id" json:"id"`
	Keywords    []string `yaml:"keywords" json:"keywords"`
	Explanation string   `yaml:"explanation" json:"explanation"`
}

// Taxonomy is the ordered, read-only category table
// ⭐ SSOT: 카테고리 판정은 이 테이블 기준으로만
type Taxonomy struct {
	Version    string     `yaml:"version" json:"version"`
	Categories []Category `yaml:"categories" json:"categories"`

	explain map[string]string
}

// Built-in category ids, in declaration order
const (
	ManagementChange      = "management_change"
	StoreRemodelling      = "store_remodelling"
	TechSpeedAccuracy     = "tech_speed_accuracy"
	TechDigitalLoyalty    = "tech_digital_loyalty"
	LTO                   = "lto"
	Partnership           = "partnership"
	SocialMediaEngagement = "social_media_engagement"
	EmployeeEngagement    = "employee_engagement"
)

// Builtin returns the default traffic-boost taxonomy
func Builtin() *Taxonomy {
	return New("builtin", []Category{
		{
			ID: ManagementChange,
			Keywords: []string{
				"new ceo", "new cfo", "new coo", "new cmo", "new cto", "steps down as ceo",
				"resigns as ceo", "appointed ceo", "leadership change", "executive shakeup",
			},
			Explanation: "Leadership changes can shift company strategy and investor sentiment.",
		},
		{
			ID: StoreRemodelling,
			Keywords: []string{
				"store remodel", "store remodelling", "reimage program", "revamp stores",
				"store renovation", "store facelift",
			},
			Explanation: "Store remodels often drive higher foot traffic and sales uplift.",
		},
		{
			ID: TechSpeedAccuracy,
			Keywords: []string{
				"kitchen display system", "kds", "ai algorithm", "order accuracy", "speed of service",
				"drive thru tech", "robotic", "automation", "self checkout", "self-order kiosk",
			},
			Explanation: "Operational tech can improve service speed and order accuracy, boosting customer satisfaction.",
		},
		{
			ID: TechDigitalLoyalty,
			Keywords: []string{
				"mobile app", "loyalty program", "reward members", "digital sales", "online order",
				"delivery app", "first-party data", "guest data", "crm",
			},
			Explanation: "Digital investments and loyalty programs grow repeat visits and valuable first-party data.",
		},
		{
			ID: LTO,
			Keywords: []string{
				"limited time offer", "lto", "seasonal menu", "special menu", "limited edition",
				"promo for a limited time", "returns for a limited time",
			},
			Explanation: "Limited-time menu items create urgency and can lead to traffic spikes.",
		},
		{
			ID: Partnership,
			Keywords: []string{
				"partners with", "collaboration with", "teams up with", "partnership", "joint venture",
			},
			Explanation: "Brand partnerships expand reach and create buzz, potentially attracting new customers.",
		},
		{
			ID: SocialMediaEngagement,
			Keywords: []string{
				"tiktok challenge", "viral on tiktok", "trending on twitter", "instagram campaign",
				"social media buzz", "meme",
			},
			Explanation: "Strong social buzz can translate into brand awareness and incremental visits.",
		},
		{
			ID: EmployeeEngagement,
			Keywords: []string{
				"best place to work", "employee satisfaction", "glassdoor rating", "wage increase",
				"tuition assistance", "staff happiness", "employee wellness", "retention",
			},
			Explanation: "Happy employees generally deliver better service, supporting customer loyalty.",
		},
	})
}

// New builds a taxonomy from categories; keywords are lowercased once
func New(version string, categories []Category) *Taxonomy {
	t := &Taxonomy{
		Version:    version,
		Categories: make([]Category, len(categories)),
	}

	for i, c := range categories {
		kws := make([]string, 0, len(c.Keywords))
		for _, kw := range c.Keywords {
			kws = append(kws, strings.ToLower(kw))
		}
		t.Categories[i] = Category{ID: c.ID, Keywords: kws, Explanation: c.Explanation}
	}

	t.index()
	return t
}

func (t *Taxonomy) index() {
	t.explain = make(map[string]string, len(t.Categories))
	for _, c := range t.Categories {
		t.explain[c.ID] = c.Explanation
	}
}

// Detect returns matching category ids in declaration order.
// First keyword hit wins per category; matching is substring, not word-bounded.
func (t *Taxonomy) Detect(text string) []string {
	lower := strings.ToLower(text)
	found := make([]string, 0, 2)

	for _, c := range t.Categories {
		for _, kw := range c.Keywords {
			if kw != "" && strings.Contains(lower, kw) {
				found = append(found, c.ID)
				break
			}
		}
	}

	return found
}

// Explain returns the explanation for id, or id itself when unknown
func (t *Taxonomy) Explain(id string) string {
	if e, ok := t.explain[id]; ok {
		return e
	}
	return id
}

// IDs returns category ids in declaration order
func (t *Taxonomy) IDs() []string {
	ids := make([]string, len(t.Categories))
	for i, c := range t.Categories {
		ids[i] = c.ID
	}
	return ids
}

// Has reports whether id is a member of the taxonomy
func (t *Taxonomy) Has(id string) bool {
	_, ok := t.explain[id]
	return ok
}
