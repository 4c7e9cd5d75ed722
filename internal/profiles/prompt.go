package profiles

import "strings"

// systemMessage keeps the model anchored to the JSON contract across the
// long extraction prompt.
const systemMessage = "You are a professional resume analyzer that creates detailed LinkedIn profiles. " +
	"Always respond with valid JSON matching the specified structure. " +
	"Include ALL experiences, certifications, and other items found in the resume. " +
	"Don't limit the number of items in any section."

// profilePrompt builds the extraction prompt around the resume text.
func profilePrompt(resumeText string) string {
	var b strings.Builder
	b.WriteString("Analyze the following resume and create a detailed LinkedIn-style profile. ")
	b.WriteString("Extract ALL experiences, certifications, and other details from the resume.\n")
	b.WriteString("Provide a JSON response with the following structure. Each section should include ALL relevant items found in the resume:\n\n")
	b.WriteString(`{
    "name": "Full name of the person",
    "headline": "Professional headline/current role",
    "location": "City, Country",
    "about": "Detailed professional summary",
    "experience": [
        {
            "title": "Job title",
            "company": "Company name",
            "duration": "Employment period",
            "description": "Detailed job responsibilities and achievements"
        }
    ],
    "education": [
        {
            "degree": "Degree name",
            "school": "Institution name",
            "duration": "Study period",
            "description": "Additional details about the education"
        }
    ],
    "projects": [
        {
            "name": "Project name",
            "description": "Detailed project description",
            "technologies": "All technologies used",
            "duration": "Project period"
        }
    ],
    "certifications": [
        {
            "name": "Certification name",
            "issuer": "Issuing organization",
            "date": "Issue date",
            "description": "Additional details about the certification"
        }
    ],
    "skills": [
        "List ALL technical and professional skills mentioned"
    ],
    "awards": [
        {
            "name": "Award name",
            "issuer": "Issuing organization",
            "date": "Date received",
            "description": "Detailed award description"
        }
    ],
    "recommendations": [
        {
            "text": "Detailed AI-generated recommendation based on experience",
            "recommender": "Generated recommender name and title"
        }
    ]
}`)
	b.WriteString("\n\nImportant:\n")
	b.WriteString("1. Include ALL experiences, certifications, and other items found in the resume\n")
	b.WriteString("2. Don't limit the number of items in any section\n")
	b.WriteString("3. Provide detailed descriptions for each item\n")
	b.WriteString("4. Ensure all dates and durations are properly formatted\n")
	b.WriteString("5. Extract as much detail as possible from the resume\n")
	b.WriteString("6. Generate 2-3 meaningful recommendations\n\n")
	b.WriteString("Resume content:\n")
	b.WriteString(resumeText)
	return b.String()
}
