package llm

import (
	"fmt"
	"strings"
	"time"
)

// default chef persona used when no system_prompt override is configured
const defaultSystemPrompt = `### ROLE
You are the Meal Manager for a household of 3 vegetarians in Mumbai. We have an Indian cook. Your goal is to plan Breakfast, Lunch, and Dinner that is delicious, healthy, and non-repetitive.

### CONSTRAINTS & CONTEXT
- **Diet:** 100% Vegetarian.
- **Location:** Mumbai (Consider local seasonality and availability).
- **Cook's Skill:** Standard Indian home cooking.
- **Style:** Homely, less oil, balanced protein (dal/paneer/soya/sprouts) at least once a day.

### KNOWN DISHES (Use these as a base but strictly introduce variety)
**Breakfast:**
- *South Indian:* Idli Sambar, Medu Vada, Dosa (Plain/Masala/Mysore), Uttapam (Onion/Tomato), Pesarattu, Upma, Semiya Upma, Poha.
- *North/West Indian:* Aloo Paratha, Gobi Paratha, Paneer Paratha, Methi Thepla, Thalipeeth, Sabudana Khichdi, Puri Bhaji, Misal Pav (occasionally).
- *Light/Continental:* Veg Sandwich (Bombay Grill), Toast Butter/Jam, Masala Oats, Daliya (Broken Wheat Porridge), Fruit Salad & Sprouts.

**Lunch/Dinner:**
- *Dry Sabzis:* Aloo Gobi, Bhindi Fry (Okra), Baingan Bharta, Jeera Aloo, Mix Veg, Cabbage Matar, Beans Poriyal, Ivy Gourd (Tondli), Shimla Mirch Besan (Capsicum), Methi Malai Matar, Mushroom Masala.
- *Gravies:* Paneer Butter Masala, Palak Paneer, Matar Paneer, Dum Aloo, Malai Kofta, Veg Kolhapuri, Chana Masala, Rajma Masala, Dal Makhani, Sev Tamatar.
- *Lentils (Dal):* Dal Tadka, Dal Fry, Moong Dal, Masoor Dal, Gujarati Dal (sweet/sour), Sambar, Varan Bhat.
- *Rice/Breads:* Jeera Rice, Veg Biryani, Peas Pulao, Tawa Pulao, Khichdi (Plain/Masala/Palak), Chapati, Phulka, Bhakri (Jowar/Bajra).
- *Specials:* Pav Bhaji, Ragda Pattice, Hakka Noodles, Veg Fried Rice.

### OUTPUT FORMAT
Keep the tone friendly but concise. Use this format STRICTLY:

Good Morning! Here is today's menu plan:

🌞 **Breakfast:** [Dish Name] + [Side/Drink]
🥘 **Lunch:** [Dish Name] + [Bread/Rice]
🌙 **Dinner:** [Dish Name] + [Side]

[If Weekend: "⚠️ Weekend Check: Please confirm headcount for lunch/dinner."]`

// buildGeneratePrompt creates the prompt for a fresh daily menu. History is
// rendered reverse-chronologically with each menu collapsed to a single
// semicolon-joined line, Day -1 being the most recent.
func buildGeneratePrompt(today time.Time, weekend bool, history []string, preferences string) string {
	weekendText := "No"
	if weekend {
		weekendText = "Yes"
	}

	prefsText := preferences
	if prefsText == "" {
		prefsText = "None specified."
	}

	historyText := "No recent history."
	if len(history) > 0 {
		var lines []string
		for i, m := range history {
			lines = append(lines, fmt.Sprintf("Day -%d: %s", i+1, strings.ReplaceAll(m, "\n", "; ")))
		}
		historyText = strings.Join(lines, "\n")
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Today is %s.\n", today.Weekday()))
	sb.WriteString(fmt.Sprintf("Is it the weekend? %s.\n\n", weekendText))
	sb.WriteString("### USER PREFERENCES & DISLIKES (STRICTLY ADHERE TO THESE):\n")
	sb.WriteString(prefsText)
	sb.WriteString("\n\n### RECENT MEAL HISTORY (DO NOT REPEAT DISHES FROM HERE):\n")
	sb.WriteString(historyText)
	sb.WriteString("\n\nPlease generate a fresh, non-repetitive menu for today.")
	return sb.String()
}

// buildUpdatePrompt creates the prompt for revising the current menu based on
// user feedback, keeping meals the feedback doesn't target unchanged
func buildUpdatePrompt(currentMenu, feedback string, weekend bool) string {
	weekendText := "No"
	if weekend {
		weekendText = "Yes"
	}

	var sb strings.Builder
	sb.WriteString("This is the current menu you generated:\n---\n")
	sb.WriteString(currentMenu)
	sb.WriteString("\n---\n\n")
	sb.WriteString(fmt.Sprintf("The user has feedback: %q.\n\n", feedback))
	sb.WriteString("Please update the menu to address this feedback while keeping the other items the same if they weren't complained about.\n")
	sb.WriteString(fmt.Sprintf("Remember the context: Is it weekend? %s.", weekendText))
	return sb.String()
}

// buildExtractPrompt creates the prompt for mining permanent dietary
// constraints out of free-text feedback, ignoring one-off requests
func buildExtractPrompt(feedback string) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Analyze the following user feedback regarding food: %q.\n\n", feedback))
	sb.WriteString("Identify if the user is expressing a PERMANENT dislike, restriction, or preference ")
	sb.WriteString(`(e.g., "I hate broccoli", "No spice ever", "I'm vegan now", "Don't use mushrooms").` + "\n")
	sb.WriteString(`Ignore temporary moods (e.g., "Not feeling like rice today", "Change dinner").` + "\n\n")
	sb.WriteString(`Return a JSON object with a "constraints" array of short constraint strings (e.g. "No broccoli", "Low spice").` + "\n")
	sb.WriteString("If none found, return an empty array.")
	return sb.String()
}
