package catalog

import (
	"time"

	"github.com/projxchange/marketplace-client/models"
)

// Categories lists the browsable category filters, "all" first.
func Categories() []string {
	return []string{CategoryAll, "React", "Java", "Python", "PHP", "Mobile", "Node.js"}
}

// AllTags lists the technology tags offered by the tag filter.
func AllTags() []string {
	return []string{
		"React", "Node.js", "MongoDB", "Stripe", "Java", "Spring Boot",
		"MySQL", "Python", "Django", "PostgreSQL", "Chart.js", "Firebase",
		"Material-UI", "PHP", "Laravel", "Bootstrap", "React Native",
	}
}

// SampleCatalog returns the built-in demo listings. The CLI browses these
// when no backend is configured, and they double as known fixtures.
func SampleCatalog() []models.Project {
	return []models.Project{
		{
			ID:            "1",
			Title:         "E-commerce Web Application",
			Description:   "Complete e-commerce solution with cart, payment integration, and admin panel. Perfect for learning modern web development.",
			Category:      "React",
			TechStack:     []string{"React", "Node.js", "MongoDB", "Stripe"},
			Price:         29,
			OriginalPrice: floatPtr(49),
			Rating:        floatPtr(4.9),
			Reviews:       intPtr(45),
			Likes:         intPtr(234),
			Views:         intPtr(1250),
			Sales:         intPtr(89),
			GithubStars:   intPtr(156),
			Featured:      true,
			Trending:      true,
			Difficulty:    strPtr(models.DifficultyIntermediate),
			DateAdded:     datePtr(2024, time.January, 15),
		},
		{
			ID:            "2",
			Title:         "Hospital Management System",
			Description:   "Complete hospital management with patient records, appointments, and billing system.",
			Category:      "Java",
			TechStack:     []string{"Java", "Spring Boot", "MySQL", "JSP"},
			Price:         45,
			OriginalPrice: floatPtr(65),
			Rating:        floatPtr(4.8),
			Reviews:       intPtr(32),
			Likes:         intPtr(189),
			Views:         intPtr(890),
			Sales:         intPtr(67),
			GithubStars:   intPtr(89),
			Difficulty:    strPtr(models.DifficultyAdvanced),
			DateAdded:     datePtr(2024, time.January, 10),
		},
		{
			ID:            "3",
			Title:         "Social Media Dashboard",
			Description:   "Analytics dashboard for social media management with real-time data visualization.",
			Category:      "Python",
			TechStack:     []string{"Python", "Django", "PostgreSQL", "Chart.js"},
			Price:         35,
			OriginalPrice: floatPtr(55),
			Rating:        floatPtr(4.7),
			Reviews:       intPtr(28),
			Likes:         intPtr(167),
			Views:         intPtr(1100),
			Sales:         intPtr(134),
			GithubStars:   intPtr(203),
			Featured:      true,
			Trending:      true,
			Difficulty:    strPtr(models.DifficultyIntermediate),
			DateAdded:     datePtr(2024, time.January, 8),
		},
		{
			ID:            "4",
			Title:         "Task Management App",
			Description:   "Collaborative task management with team features and real-time notifications.",
			Category:      "React",
			TechStack:     []string{"React", "Firebase", "Material-UI"},
			Price:         22,
			OriginalPrice: floatPtr(35),
			Rating:        floatPtr(4.6),
			Reviews:       intPtr(19),
			Likes:         intPtr(98),
			Views:         intPtr(650),
			Sales:         intPtr(45),
			GithubStars:   intPtr(67),
			Difficulty:    strPtr(models.DifficultyBeginner),
			DateAdded:     datePtr(2024, time.January, 5),
		},
		{
			ID:            "5",
			Title:         "Online Learning Platform",
			Description:   "Complete LMS with video streaming, quizzes, and progress tracking features.",
			Category:      "PHP",
			TechStack:     []string{"PHP", "Laravel", "MySQL", "Bootstrap"},
			Price:         55,
			OriginalPrice: floatPtr(80),
			Rating:        floatPtr(4.9),
			Reviews:       intPtr(67),
			Likes:         intPtr(312),
			Views:         intPtr(1800),
			Sales:         intPtr(156),
			GithubStars:   intPtr(278),
			Featured:      true,
			Trending:      true,
			Difficulty:    strPtr(models.DifficultyAdvanced),
			DateAdded:     datePtr(2024, time.January, 12),
		},
		{
			ID:            "6",
			Title:         "Mobile Banking App",
			Description:   "Secure mobile banking with biometric authentication and transaction history.",
			Category:      "Mobile",
			TechStack:     []string{"React Native", "Node.js", "MongoDB"},
			Price:         40,
			OriginalPrice: floatPtr(60),
			Rating:        floatPtr(4.5),
			Reviews:       intPtr(23),
			Likes:         intPtr(145),
			Views:         intPtr(720),
			Sales:         intPtr(78),
			GithubStars:   intPtr(134),
			Difficulty:    strPtr(models.DifficultyIntermediate),
			DateAdded:     datePtr(2024, time.January, 3),
		},
	}
}

func floatPtr(v float64) *float64 { return &v }

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

func datePtr(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &t
}
