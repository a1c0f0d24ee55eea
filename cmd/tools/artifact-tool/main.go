// cmd/tools/artifact-tool/main.go
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"career-workers/internal/common/logger"
	"career-workers/internal/engine/features"
	"career-workers/internal/engine/model"
	"career-workers/internal/engine/prioritizer"
	"career-workers/internal/models"
)

func main() {
	validateCmd := flag.NewFlagSet("validate", flag.ExitOnError)
	convertCmd := flag.NewFlagSet("convert", flag.ExitOnError)
	inspectCmd := flag.NewFlagSet("inspect", flag.ExitOnError)
	rankCmd := flag.NewFlagSet("rank", flag.ExitOnError)

	// Validate command flags
	validatePath := validateCmd.String("path", "artifacts/skill_ranker.json", "Path to artifact (.json or .cbor)")

	// Convert command flags
	convertIn := convertCmd.String("in", "artifacts/skill_ranker.json", "JSON artifact to read")
	convertOut := convertCmd.String("out", "artifacts/skill_ranker.cbor", "CBOR artifact to write")

	// Inspect command flags
	inspectPath := inspectCmd.String("path", "artifacts/skill_ranker.json", "Path to artifact (.json or .cbor)")

	// Rank command flags
	rankPath := rankCmd.String("path", "artifacts/skill_ranker.json", "Path to artifact (.json or .cbor)")
	rankCareer := rankCmd.String("career", "", "Target career (e.g., Data Scientist)")
	rankSkills := rankCmd.String("skills", "", "Comma separated current skills")
	rankExperience := rankCmd.Float64("experience", 0, "Years of experience")
	rankCapacity := rankCmd.Float64("capacity", 0.5, "Learning capacity in [0,1]")
	rankTopK := rankCmd.Int("top", prioritizer.DefaultTopK, "Number of skills to return")
	rankDemand := rankCmd.Float64("demand", 0.5, "Constant market demand in [0,1]")

	if len(os.Args) < 2 {
		help()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "validate":
		validateCmd.Parse(os.Args[2:])
		err = validateArtifact(os.Stdout, *validatePath)

	case "convert":
		convertCmd.Parse(os.Args[2:])
		err = convertArtifact(os.Stdout, *convertIn, *convertOut)

	case "inspect":
		inspectCmd.Parse(os.Args[2:])
		err = inspectArtifact(os.Stdout, *inspectPath)

	case "rank":
		rankCmd.Parse(os.Args[2:])
		if *rankCareer == "" {
			fmt.Println("Error: career is required for rank.")
			rankCmd.Usage()
			os.Exit(1)
		}
		profile := &models.UserProfile{
			CurrentSkills:    splitSkills(*rankSkills),
			ExperienceYears:  *rankExperience,
			LearningCapacity: *rankCapacity,
		}
		err = rankSkillsFor(os.Stdout, *rankPath, profile, *rankCareer, *rankTopK, *rankDemand)

	case "help":
		help()
		return
	default:
		help()
		os.Exit(1)
	}

	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func validateArtifact(w io.Writer, path string) error {
	a, err := model.Load(path)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Artifact %s (version %s) is valid: %d skills, %d careers.\n",
		path, a.Version, len(a.AllSkills), len(a.Careers))
	return nil
}

func convertArtifact(w io.Writer, in, out string) error {
	data, err := os.ReadFile(in)
	if err != nil {
		return fmt.Errorf("read %s: %w", in, err)
	}
	encoded, err := model.JSONToCBOR(data)
	if err != nil {
		return fmt.Errorf("convert %s: %w", in, err)
	}
	if _, err := model.ParseCBOR(encoded); err != nil {
		return fmt.Errorf("converted artifact does not load: %w", err)
	}
	if err := os.WriteFile(out, encoded, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	fmt.Fprintf(w, "Wrote %s (%d bytes, was %d).\n", out, len(encoded), len(data))
	return nil
}

func inspectArtifact(w io.Writer, path string) error {
	a, err := model.Load(path)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Version:  %s\n", a.Version)
	fmt.Fprintf(w, "Features: %d columns\n", len(a.FeatureColumns))
	fmt.Fprintf(w, "Careers:  %s\n", strings.Join(a.Careers, ", "))

	dump := a.Catalog().ByCategory()
	categories := make([]string, 0, len(dump))
	for c := range dump {
		categories = append(categories, c)
	}
	sort.Strings(categories)
	for _, c := range categories {
		fmt.Fprintf(w, "  %-24s %s\n", c, strings.Join(dump[c], ", "))
	}

	var unencoded []string
	for _, s := range a.AllSkills {
		if _, ok := a.SkillEncoder.Index(s); !ok {
			unencoded = append(unencoded, s)
		}
	}
	if len(unencoded) > 0 {
		fmt.Fprintf(w, "Never ranked (missing from skill encoder): %s\n", strings.Join(unencoded, ", "))
	}
	return nil
}

func rankSkillsFor(w io.Writer, path string, profile *models.UserProfile, career string, topK int, demand float64) error {
	a, err := model.Load(path)
	if err != nil {
		return err
	}
	p, err := prioritizer.New(a, prioritizer.Options{
		MarketDemand: features.ConstantMarketDemand(demand),
		Logger:       logger.NewNoOpLogger(),
	})
	if err != nil {
		return err
	}

	ranked, err := p.Prioritize(context.Background(), profile, career, topK)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ranked)
}

func splitSkills(raw string) []string {
	var skills []string
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			skills = append(skills, s)
		}
	}
	return skills
}

func help() {
	fmt.Println("Usage: artifact-tool <command> [arguments]")
	fmt.Println("Commands:")
	fmt.Println("  validate  Load an artifact and check it against the schema")
	fmt.Println("            -path <file>")
	fmt.Println("  convert   Convert a JSON artifact to CBOR")
	fmt.Println("            -in <file.json> -out <file.cbor>")
	fmt.Println("  inspect   Print careers and the skill catalog of an artifact")
	fmt.Println("            -path <file>")
	fmt.Println("  rank      Rank missing skills for an ad-hoc profile")
	fmt.Println("            -career <name> [-skills a,b,c] [-experience n] [-capacity f] [-top k] [-demand f]")
	fmt.Println("  help      Show this help message")
}
