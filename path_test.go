//go:build !windows

package bookorder

import "testing"

func TestPleasantPath(t *testing.T) {
	type args struct {
		absolute     string
		wd           string
		omitDotSlash bool
	}
	tests := []struct {
		name string
		args args
		want string
	}{
		{name: "WorkingDirItself", args: args{absolute: "/my/book", wd: "/my/book", omitDotSlash: true}, want: "."},
		{name: "NextToFile_1", args: args{absolute: "/my/book/01_intro.md", wd: "/my/book", omitDotSlash: true}, want: "01_intro.md"},
		{name: "NextToFile_2", args: args{absolute: "/my/book/01_intro.md", wd: "/my/book", omitDotSlash: false}, want: "./01_intro.md"},
		{name: "FileInSub_1", args: args{absolute: "/my/book/02_part/01_a.md", wd: "/my/book", omitDotSlash: true}, want: "02_part/01_a.md"},
		{name: "FileInSub_2", args: args{absolute: "/my/book/02_part/01_a.md", wd: "/my/book", omitDotSlash: false}, want: "./02_part/01_a.md"},
		{name: "FileAbove", args: args{absolute: "/my/book/01_intro.md", wd: "/my/book/02_part", omitDotSlash: false}, want: "/my/book/01_intro.md"},
		{name: "SiblingWithCommonPrefix", args: args{absolute: "/my/bookshelf/x.md", wd: "/my/book", omitDotSlash: true}, want: "/my/bookshelf/x.md"},
		{name: "Elsewhere", args: args{absolute: "/srv/other.md", wd: "/my/book", omitDotSlash: true}, want: "/srv/other.md"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pleasantPath(tt.args.absolute, tt.args.wd, tt.args.omitDotSlash); got != tt.want {
				t.Errorf("pleasantPath() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLinkFormatter(t *testing.T) {
	absolute := linkFormatter("/my/book", false)
	if got := absolute("/my/book/01_a/README.md"); got != "/my/book/01_a/README.md" {
		t.Errorf("absolute link = %v", got)
	}
	relative := linkFormatter("/my/book", true)
	if got := relative("/my/book/01_a/README.md"); got != "01_a/README.md" {
		t.Errorf("relative link = %v", got)
	}
	if got := relative("/my/other/01_x.md"); got != "../other/01_x.md" {
		t.Errorf("relative link outside output = %v", got)
	}
}
