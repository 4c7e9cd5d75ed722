package analyses

import "strings"

// matchPrompt builds the JD match prompt. The embedded JSON example and
// formatting rules steer the model toward output the repair layer can
// always recover.
func matchPrompt(resumeText, jobDescription string) string {
	var b strings.Builder
	b.WriteString("You are an experienced Applicant Tracking System (ATS) specializing in the tech industry. ")
	b.WriteString("Analyze the provided job description and extract all important keywords.\n\n")
	b.WriteString("Required JSON format (copy this structure exactly):\n")
	b.WriteString("{\n")
	b.WriteString("    \"JD Match\": \"70%\",\n")
	b.WriteString("    \"JD Keywords\": [\"Java\", \"Spring\", \"SQL\", \"Cloud\"]\n")
	b.WriteString("}\n\n")
	b.WriteString("Critical JSON formatting rules:\n")
	b.WriteString("1. Use exactly these two keys: JD Match and JD Keywords\n")
	b.WriteString("2. JD Keywords must be an array of strings\n")
	b.WriteString("3. Include commas between ALL array elements\n")
	b.WriteString("4. Include commas between ALL key-value pairs\n")
	b.WriteString("5. Use ONLY double quotes, never single quotes\n")
	b.WriteString("6. No text outside the JSON object\n")
	b.WriteString("7. List at least top 20 most important keywords from the job description\n")
	b.WriteString("8. Make sure 100 percent u list all technologies related to cs, software,tech,programming languages or any other cs or software related tech keywords which may fit in for an idea resume ONLY from the given job description\n\n")
	b.WriteString("Resume text:\n")
	b.WriteString(resumeText)
	b.WriteString("\n\nJob Description:\n")
	b.WriteString(jobDescription)
	return b.String()
}

// tailorPrompt builds the bullet tailoring prompt.
func tailorPrompt(resumeText, jobDescription string, keywords []string) string {
	var b strings.Builder
	b.WriteString("You are an expert resume writer. Based on the provided resume and job description, ")
	b.WriteString("generate 4 strong bullet points for experience or projects that incorporate the required keywords. ")
	b.WriteString("Each bullet point should highlight relevant skills and achievements.\n\n")
	b.WriteString("Format your response as a JSON object with this exact structure:\n")
	b.WriteString("{\n")
	b.WriteString("    \"tailored_points\": [\n")
	b.WriteString("        \"Point 1\",\n")
	b.WriteString("        \"Point 2\",\n")
	b.WriteString("        \"Point 3\",\n")
	b.WriteString("        \"Point 4\"\n")
	b.WriteString("    ]\n")
	b.WriteString("}\n\n")
	b.WriteString("Guidelines:\n")
	b.WriteString("1. Each point should start with a strong action verb\n")
	b.WriteString("2. Include specific technical details and metrics when possible\n")
	b.WriteString("3. Focus on achievements and impact\n")
	b.WriteString("4. Incorporate the following keywords where relevant: ")
	b.WriteString(strings.Join(keywords, ", "))
	b.WriteString("\n\nResume Content:\n")
	b.WriteString(resumeText)
	b.WriteString("\n\nJob Description:\n")
	b.WriteString(jobDescription)
	return b.String()
}
