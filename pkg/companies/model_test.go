package companies

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitList(t *testing.T) {
	require.Nil(t, SplitList(nil))
	require.Empty(t, SplitList(Ptr("")))
	require.Equal(t, []string{"AI/ML", "Fintech"}, SplitList(Ptr("AI/ML,Fintech")))
	require.Equal(t, []string{"a", "b"}, SplitList(Ptr(" a , ,b ,")))
}

func TestCompany_ParseOnRead(t *testing.T) {
	c := Company{
		Industries:       Ptr("Bio Health"),
		SocialMediaLinks: Ptr("https://x.com/a, https://linkedin.com/a"),
		Address:          Ptr("Seattle"),
	}

	require.Equal(t, []string{"Bio Health"}, c.IndustryList())
	require.Equal(t, []string{"https://x.com/a", "https://linkedin.com/a"}, c.SocialLinks())
	require.Nil(t, c.InvestorList())
	require.Equal(t, "Seattle", c.Location())
	require.Equal(t, "", c.DisplayName())
	require.Equal(t, "Bio Health", *c.Industries)
}
