package questionnaire

// RequiredAnswers is how many non-empty answers make the partner-preference
// section count as complete. It is deliberately lower than the total question
// count: the last few questions are a bonus, not a gate.
const RequiredAnswers = 17

// Question is one questionnaire entry. Multi questions collect a set of
// options; single questions keep exactly one. MaxSelections of 0 means a
// multi question is uncapped.
type Question struct {
	ID            string   `json:"id"`
	Prompt        string   `json:"prompt"`
	Options       []string `json:"options"`
	Multi         bool     `json:"multi"`
	MaxSelections int      `json:"max_selections,omitempty"`
}

// Section groups related questions under one title.
type Section struct {
	Title     string     `json:"title"`
	Questions []Question `json:"questions"`
}

// Catalog returns the partner-preference questionnaire: four sections,
// twenty-one questions. Question ids are stable; stored answers are keyed by
// them, so renaming an id orphans existing answers.
func Catalog() []Section {
	return []Section{
		{
			Title: "Relationship Goals",
			Questions: []Question{
				{ID: "goal_type", Prompt: "What kind of relationship are you hoping to find?", Options: []string{"Long-term partner", "Something casual", "Marriage", "Still figuring it out"}},
				{ID: "goal_timeline", Prompt: "How soon would you like to settle down?", Options: []string{"Within a year", "In a few years", "No timeline", "Never"}},
				{ID: "goal_kids", Prompt: "Do you want children?", Options: []string{"Want children", "Don't want children", "Have children and want more", "Have children and don't want more", "Not sure"}},
				{ID: "goal_marriage", Prompt: "How do you feel about marriage?", Options: []string{"Essential", "Open to it", "Not for me"}},
				{ID: "goal_monogamy", Prompt: "What relationship structure works for you?", Options: []string{"Monogamous", "Open", "Polyamorous", "Exploring"}},
			},
		},
		{
			Title: "Values",
			Questions: []Question{
				{ID: "values_important", Prompt: "Which values matter most to you in a partner?", Options: []string{"Honesty", "Ambition", "Kindness", "Humor", "Loyalty", "Independence"}, Multi: true, MaxSelections: 3},
				{ID: "values_religion", Prompt: "How important is sharing your religious views?", Options: []string{"Very important", "Somewhat important", "Not important"}},
				{ID: "values_politics", Prompt: "Could you date someone with different politics?", Options: []string{"Yes", "Depends how different", "No"}},
				{ID: "values_family", Prompt: "How close are you with your family?", Options: []string{"Very close", "Somewhat close", "Not close", "It's complicated"}},
				{ID: "values_dealbreakers", Prompt: "Which of these are dealbreakers for you?", Options: []string{"Smoking", "Heavy drinking", "No ambition", "Doesn't want kids", "Long distance"}, Multi: true},
			},
		},
		{
			Title: "Lifestyle",
			Questions: []Question{
				{ID: "life_weekend", Prompt: "Your ideal weekend looks like…", Options: []string{"Out with friends", "Quiet night in", "Outdoors adventure", "Working on projects"}, Multi: true, MaxSelections: 2},
				{ID: "life_activity", Prompt: "How active are you?", Options: []string{"Very active", "Fairly active", "Occasionally active", "Not active"}},
				{ID: "life_pets", Prompt: "How do you feel about pets?", Options: []string{"Have pets", "Want pets", "Allergic", "Prefer none"}},
				{ID: "life_travel", Prompt: "How often do you like to travel?", Options: []string{"As often as possible", "A few trips a year", "Rarely", "Homebody"}},
				{ID: "life_diet", Prompt: "Any food lifestyles that matter to you?", Options: []string{"Vegetarian", "Vegan", "Halal", "Kosher", "No restrictions"}, Multi: true},
				{ID: "life_social", Prompt: "At a party you are usually…", Options: []string{"The center of attention", "Chatting in a small group", "One-on-one in a corner", "Leaving early"}},
			},
		},
		{
			Title: "Communication & Intimacy",
			Questions: []Question{
				{ID: "comm_style", Prompt: "How do you prefer to resolve disagreements?", Options: []string{"Talk it out right away", "Cool off first", "Write it down", "Avoid conflict"}},
				{ID: "comm_frequency", Prompt: "How often do you like to be in touch?", Options: []string{"Constant contact", "A few times a day", "Once a day", "When there's something to say"}},
				{ID: "comm_love_language", Prompt: "How do you show affection?", Options: []string{"Words", "Quality time", "Gifts", "Acts of service", "Physical touch"}, Multi: true, MaxSelections: 2},
				{ID: "intimacy_pace", Prompt: "What pace feels right when getting to know someone?", Options: []string{"Slow and steady", "Let it flow", "Fast and intense"}},
				{ID: "intimacy_affection", Prompt: "Public displays of affection are…", Options: []string{"The best", "Fine in moderation", "Not my thing"}},
			},
		},
	}
}

// QuestionCount returns the total number of questions across all sections.
func QuestionCount() int {
	n := 0
	for _, s := range Catalog() {
		n += len(s.Questions)
	}
	return n
}

// FindQuestion looks a question up by id.
func FindQuestion(id string) (Question, bool) {
	for _, s := range Catalog() {
		for _, q := range s.Questions {
			if q.ID == id {
				return q, true
			}
		}
	}
	return Question{}, false
}
