package main

import (
	_ "embed"
	"fmt"

	"portfolio-backend/internal/faq"
	"portfolio-backend/internal/projects"

	"gopkg.in/yaml.v3"
)

//go:embed fixtures.yaml
var defaultFixtures []byte

type fixtures struct {
	FAQs     []faqFixture     `yaml:"faqs"`
	Projects []projectFixture `yaml:"projects"`
}

type faqFixture struct {
	Question string   `yaml:"question"`
	Answer   string   `yaml:"answer"`
	Category string   `yaml:"category"`
	Tags     []string `yaml:"tags"`
	Order    *int     `yaml:"order"`
}

func (f faqFixture) request() faq.CreateRequest {
	return faq.CreateRequest{
		Question: f.Question,
		Answer:   f.Answer,
		Category: f.Category,
		Tags:     f.Tags,
		Order:    f.Order,
	}
}

type projectFixture struct {
	Title           string   `yaml:"title"`
	ProjectNumber   string   `yaml:"projectNumber"`
	Description     string   `yaml:"description"`
	FullDescription string   `yaml:"fullDescription"`
	ImageURL        string   `yaml:"imageUrl"`
	VideoURL        string   `yaml:"videoUrl"`
	Technologies    []string `yaml:"technologies"`
	LiveURL         string   `yaml:"liveUrl"`
	GithubURL       string   `yaml:"githubUrl"`
	Category        string   `yaml:"category"`
	Status          string   `yaml:"status"`
	Featured        *bool    `yaml:"featured"`
	Order           *int     `yaml:"order"`
}

func (p projectFixture) request() projects.CreateRequest {
	return projects.CreateRequest{
		Title:           p.Title,
		ProjectNumber:   p.ProjectNumber,
		Description:     p.Description,
		FullDescription: p.FullDescription,
		ImageURL:        p.ImageURL,
		VideoURL:        p.VideoURL,
		Technologies:    p.Technologies,
		LiveURL:         p.LiveURL,
		GithubURL:       p.GithubURL,
		Category:        p.Category,
		Status:          p.Status,
		Featured:        p.Featured,
		Order:           p.Order,
	}
}

func parseFixtures(raw []byte) (fixtures, error) {
	var out fixtures
	if err := yaml.Unmarshal(raw, &out); err != nil {
		return fixtures{}, fmt.Errorf("parse fixtures: %w", err)
	}
	return out, nil
}
