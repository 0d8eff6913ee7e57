package services

import "fmt"

// Prompt templates for the two drafting calls. The outline prompt pins the
// exact format the parser understands: sections separated by blank lines,
// bullets prefixed with "-".

const titlePromptFmt = `Write one short, compelling presentation title for the following topic.
Topic: %s
Output only the title text, with no quotes and no extra commentary.`

const outlinePromptFmt = `Create a presentation outline for the topic "%s" with these requirements:
- 3 to 5 sections, each with a section title and 2 to 4 bullet points
- Separate sections with a blank line and start every bullet with '-'
- Output nothing but the outline itself

Example of the expected format:

First Section Title
- bullet point
- bullet point

Second Section Title
- bullet point
- bullet point

Follow this format exactly so the outline can be parsed.`

// TitlePrompt builds the title generation prompt for a keyword
func TitlePrompt(keyword string) string {
	return fmt.Sprintf(titlePromptFmt, keyword)
}

// OutlinePrompt builds the outline generation prompt for a keyword
func OutlinePrompt(keyword string) string {
	return fmt.Sprintf(outlinePromptFmt, keyword)
}
