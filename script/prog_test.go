package script

import (
	"errors"
	"testing"

	"github.com/pwalch/lonesnake-release/version"
	. "github.com/smartystreets/goconvey/convey"
)

func TestReplaceProgVersion(t *testing.T) {
	Convey("Given a script with PROG_VERSION declarations", t, func() {
		text := "readonly PROG_VERSION=\"1.4.2\"\necho x\n  readonly PROG_VERSION=\"0.9.10\"\nPROG_VERSION=\"1.4.2\"\n"
		updated := ReplaceProgVersion(text, version.SemanticVersion{Major: 2})

		Convey("Every readonly declaration is rewritten", func() {
			So(updated, ShouldEqual, "readonly PROG_VERSION=\"2.0.0\"\necho x\n  readonly PROG_VERSION=\"2.0.0\"\nPROG_VERSION=\"1.4.2\"\n")
		})
	})
}

func TestReplaceURLVersion(t *testing.T) {
	const prefix = "https://raw.githubusercontent.com/pwalch/lonesnake"

	Convey("Given a README with install URLs", t, func() {
		text := "curl -sL " + prefix + "/1.4.2/lonesnake | bash\n" +
			"see " + prefix + "/1.4.2/helpers/lonesnake-kit\n" +
			"and https://github.com/pwalch/lonesnake/1.4.2\n"
		updated := ReplaceURLVersion(text, prefix, version.SemanticVersion{Major: 2})

		Convey("Only URLs under the prefix are rewritten", func() {
			So(updated, ShouldEqual, "curl -sL "+prefix+"/2.0.0/lonesnake | bash\n"+
				"see "+prefix+"/2.0.0/helpers/lonesnake-kit\n"+
				"and https://github.com/pwalch/lonesnake/1.4.2\n")
		})
	})

	Convey("Given a prefix with regexp metacharacters", t, func() {
		updated := ReplaceURLVersion("a+b/1.0.0 aab/1.0.0", "a+b", version.SemanticVersion{Minor: 2})
		So(updated, ShouldEqual, "a+b/0.2.0 aab/1.0.0")
	})
}

func TestValidate(t *testing.T) {
	Convey("Validate", t, func() {
		So(Validate("ok.sh", "readonly A=\"1\"\nif true; then echo ok; fi\n"), ShouldBeNil)

		err := Validate("broken.sh", "if true; then echo\n")
		So(err, ShouldNotBeNil)
		So(errors.Unwrap(err), ShouldNotBeNil)
	})
}
