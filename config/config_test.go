package config_test

import (
	"os"
	"path/filepath"
	"time"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	ranks "github.com/frizzlenpop/FrizzlenRanks"
	"github.com/frizzlenpop/FrizzlenRanks/config"
)

var _ = Describe("Config", func() {
	var dir string

	BeforeEach(func() {
		var err error
		dir, err = os.MkdirTemp("", "config")
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		os.RemoveAll(dir)
	})

	Describe("#Load", func() {
		It("returns the defaults when the file does not exist", func() {
			conf, err := config.Load(filepath.Join(dir, "missing.yml"))

			Expect(err).NotTo(HaveOccurred())
			Expect(conf).To(Equal(config.Default()))
		})

		It("layers file values over the defaults", func() {
			path := filepath.Join(dir, "config.yml")
			Expect(os.WriteFile(path, []byte(
				"use-global-users: true\ntrack-type: multi\nsweep-interval: 30s\n",
			), 0644)).To(Succeed())

			conf, err := config.Load(path)

			Expect(err).NotTo(HaveOccurred())
			Expect(conf.UseGlobalUsers).To(BeTrue())
			Expect(conf.TrackType).To(Equal("multi"))
			Expect(conf.SweepInterval).To(Equal("30s"))
			Expect(conf.AutoSave).To(BeTrue())
			Expect(conf.DefaultGroup).To(Equal("default"))
		})

		It("errors on malformed YAML", func() {
			path := filepath.Join(dir, "config.yml")
			Expect(os.WriteFile(path, []byte("{nope"), 0644)).To(Succeed())

			_, err := config.Load(path)

			Expect(err).To(HaveOccurred())
		})
	})

	Describe("#Write", func() {
		It("round-trips through Load", func() {
			conf := config.Default()
			conf.UseGlobalFiles = true
			path := filepath.Join(dir, "config.yml")

			Expect(conf.Write(path)).To(Succeed())

			loaded, err := config.Load(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(loaded).To(Equal(conf))
		})
	})

	Describe("#SweepPeriod", func() {
		It("parses the configured interval", func() {
			conf := config.Default()
			conf.SweepInterval = "2h"

			period, err := conf.SweepPeriod()

			Expect(err).NotTo(HaveOccurred())
			Expect(period).To(Equal(2 * time.Hour))
		})

		It("falls back to the default when unset", func() {
			conf := config.Config{}

			period, err := conf.SweepPeriod()

			Expect(err).NotTo(HaveOccurred())
			Expect(period).To(Equal(5 * time.Minute))
		})

		It("rejects a malformed interval", func() {
			conf := config.Default()
			conf.SweepInterval = "soon"

			_, err := conf.SweepPeriod()

			Expect(err).To(HaveOccurred())
		})
	})

	Describe("#PromotionPolicy", func() {
		It("maps the configured track type", func() {
			conf := config.Default()
			Expect(conf.PromotionPolicy()).To(Equal(ranks.TrackTypeSingle))

			conf.TrackType = "replace"
			Expect(conf.PromotionPolicy()).To(Equal(ranks.TrackTypeReplace))
		})
	})
})
