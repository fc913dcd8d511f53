package recommendations

// Key aliases for map-shaped payloads. English aliases are checked first,
// then the Arabic equivalents, matching the order the report generator has
// been observed to emit them in.

var recommendationKeys = []string{
	"recommendations", "recommendation_summary", "recommendation",
	"recs", "suggestions", "advice",
	"التوصيات", "توصيات", "اقتراحات", "نصائح",
}

var nextStepKeys = []string{
	"next_steps", "next", "actions", "action_items",
	"immediate_actions", "action_plan", "plan", "steps",
	"الخطوات التالية", "الخطوات_التالية", "الخطوات",
	"خطة العمل", "خطة_العمل", "الإجراءات", "إجراءات",
}

// Timeline buckets fold into next steps: a horizon-bucketed plan is still a
// plan.
var timelineBucketKeys = []string{
	"short_term", "mid_term", "long_term",
	"المدى القصير", "المدى_القصير",
	"المدى المتوسط", "المدى_المتوسط",
	"المدى البعيد", "المدى_البعيد",
}

// Heading vocabulary for free-text payloads, matched as case-insensitive
// substrings of a heading-like line.

var recommendationHeadingWords = []string{
	"recommend", "suggest", "advice",
	"توصي", "اقتراح", "نصائح", "نصيحة",
}

var nextStepHeadingWords = []string{
	"next step", "action", "plan", "step",
	"الخطوات", "خطوة", "إجراء", "خطة",
}
