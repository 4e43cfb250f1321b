package skills

import "fmt"

// Recommendations suggests skill-development actions for each category
// that has missing skills. Categories without gaps are omitted.
func Recommendations(missing map[string][]string) map[string][]string {
	recommendations := make(map[string][]string)

	for category, skills := range missing {
		if len(skills) == 0 {
			continue
		}

		switch category {
		case "programming_languages":
			recommendations[category] = []string{
				"Consider online coding bootcamps or courses",
				"Practice with coding challenges on platforms like LeetCode or HackerRank",
				"Build personal projects to demonstrate proficiency",
			}
		case "web_technologies":
			recommendations[category] = []string{
				"Complete framework-specific tutorials and documentation",
				"Build full-stack web applications",
				"Contribute to open-source projects",
			}
		case "cloud_platforms":
			recommendations[category] = []string{
				"Obtain cloud certifications (AWS, Azure, GCP)",
				"Practice with free tier cloud services",
				"Deploy personal projects to cloud platforms",
			}
		case "data_science":
			recommendations[category] = []string{
				"Complete data science courses or bootcamps",
				"Work on Kaggle competitions",
				"Build and showcase data analysis projects",
			}
		default:
			recommendations[category] = []string{
				fmt.Sprintf("Develop %s skills through relevant courses and practice", category),
			}
		}
	}

	return recommendations
}
