package tutor

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "plain prose untouched",
			in:   "Just a sentence.",
			want: "Just a sentence.",
		},
		{
			name: "fenced block deleted entirely",
			in:   "Before\n```python\nx = 1\n```\nAfter",
			want: "Before\n\nAfter",
		},
		{
			name: "unterminated fence cut to end",
			in:   "Keep\n```\ndropped",
			want: "Keep",
		},
		{
			name: "bracket display to dollar block",
			in:   "Solve:\n\\[ x^2 = 4 \\]\nDone.",
			want: "Solve:\n$$\nx^2 = 4\n$$\nDone.",
		},
		{
			name: "paren inline to single dollars",
			in:   "The root is \\( x=2 \\), check it.",
			want: "The root is $x=2$, check it.",
		},
		{
			name: "embedded display forced onto own lines",
			in:   "Thus $$ a+b = c $$ holds.",
			want: "Thus\n$$\na+b = c\n$$\nholds.",
		},
		{
			name: "lone dollar lines promoted to display",
			in:   "Start\n$\nE = mc^2\n$\nEnd",
			want: "Start\n$$\nE = mc^2\n$$\nEnd",
		},
		{
			name: "lone dollar paired with double dollar closer",
			in:   "$\nx+1\n$$",
			want: "$$\nx+1\n$$",
		},
		{
			name: "unpaired lone dollar dropped",
			in:   "A\n$\nB",
			want: "A\n\nB",
		},
		{
			name: "inline spacing trimmed",
			in:   "Value $ x $ here",
			want: "Value $x$ here",
		},
		{
			name: "single dollar without closer left alone",
			in:   "Price is $5",
			want: "Price is $5",
		},
		{
			name: "unbalanced double dollar left alone",
			in:   "broken $$ math",
			want: "broken $$ math",
		},
		{
			name: "blank line runs collapse",
			in:   "a\n\n\n\n\nb",
			want: "a\n\nb",
		},
		{
			name: "surrounding whitespace stripped",
			in:   "  \n  text  \n\n",
			want: "text",
		},
		{
			name: "adjacent displays",
			in:   "\\[a\\]\\[b\\]",
			want: "$$\na\n$$\n$$\nb\n$$",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
			// повторная нормализация не должна ничего менять
			if again := Normalize(got); again != got {
				t.Errorf("not idempotent: Normalize(%q) = %q", got, again)
			}
		})
	}
}

func TestNormalizeLoneDollarDropPolicy(t *testing.T) {
	in := "Start\n$\nE = mc^2\n$\nEnd"
	got := NormalizeWithPolicy(in, LoneDollarDrop)
	want := "Start\n\nE = mc^2\n\nEnd"
	if got != want {
		t.Errorf("NormalizeWithPolicy(drop) = %q, want %q", got, want)
	}
	if again := NormalizeWithPolicy(got, LoneDollarDrop); again != got {
		t.Errorf("not idempotent under drop policy: %q -> %q", got, again)
	}
}
